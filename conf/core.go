package conf

import (
	"context"
	"encoding/json/v2"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"

	"github.com/sitetools/ops-core/apis/authsvc"
	"github.com/sitetools/ops-core/db/kvdb"
	"github.com/sitetools/ops-core/db/kvdb/impls/redis"
	"github.com/sitetools/ops-core/db/sqldb"
	"github.com/sitetools/ops-core/db/sqldb/impls/mysql"
	"github.com/sitetools/ops-core/db/sqldb/impls/pgsql"
	"github.com/sitetools/ops-core/schedjobs"
	"github.com/sitetools/ops-core/sec"
	"github.com/sitetools/ops-core/storages"
	"github.com/sitetools/ops-core/storages/impls/s3"
	"github.com/sitetools/ops-core/svc"
	"github.com/sitetools/ops-core/web"
	"github.com/sitetools/ops-core/web/session"
)

// Core - common app config and shared resources, filled step by step
// from config/.*.json files.
type Core struct {
	AppName string `json:"app_name"`
	Listen  string `json:"listen"` // HTTP Server Listen IP:PORT Address
	Host    string `json:"host"`   // HTTP Host. Can be used to generate public url endpoints

	AppRoot    string             `json:"-"` // Filled from compiled paths
	RootCtx    context.Context    `json:"-"` // Global Context with RootCancel
	RootCancel context.CancelFunc `json:"-"` // CancelFunc for RootCtx

	JobScheduler      *schedjobs.Scheduler `json:"-"` // PrepareJobScheduler
	WebService        *web.Service         `json:"-"` // PrepareWebService
	StorageConf       storages.Conf        `json:"-"` // PrepareObjectStorage
	ObjectStorage     storages.Store       `json:"-"` // PrepareObjectStorage
	BackendHttpClient *http.Client         `json:"-"` // for requests to external apis
	KVDBConf          kvdb.Conf            `json:"-"` // PrepareKVDatabase
	BackendKVDBClient kvdb.Client          `json:"-"` // PrepareKVDatabase
	SQLDBConf         sqldb.Conf           `json:"-"` // PrepareSQLDatabase
	BackendSQLClient  sqldb.Client         `json:"-"` // PrepareSQLDatabase
	WebSessionManager *session.Manager     `json:"-"` // PrepareWebSessions
	AuthServiceClient *authsvc.Client      `json:"-"` // PrepareAuthServiceClient

	services []svc.Service // Services to Manage
	done     chan error
}

// BaseInit - 1st step for initialization
// 1. set AppRoot
// 2. load config/.core.json file
// 3. prepare base fields
// 4. Start ShutdownSignalListener
func (c *Core) BaseInit(appRoot string, rootCtx context.Context, rootCancel context.CancelFunc) error {
	c.AppRoot = appRoot
	envBytes, err := os.ReadFile(filepath.Join(appRoot, "config", ".core.json"))
	if err != nil {
		return err
	}
	if err = json.Unmarshal(envBytes, c); err != nil {
		return err
	}
	c.RootCtx = rootCtx
	c.RootCancel = rootCancel
	c.BackendHttpClient = &http.Client{}
	c.startShutdownSignalListener()
	return nil
}

func (c *Core) AddService(s svc.Service) {
	log.Printf("[INFO] adding service: %s", s.Name())
	c.services = append(c.services, s)
	log.Printf("[INFO] total services: %d", len(c.services))
}

func (c *Core) StartServices() error {
	c.done = make(chan error, len(c.services))
	for _, s := range c.services {
		err := s.Start()
		if err != nil {
			return err
		}
		go func(s svc.Service) {
			err := <-s.Done()
			c.done <- err
		}(s) // pass the loop var to the param. otherwise, they are captured inside goroutine lazily
	}
	return nil
}

func (c *Core) WaitServicesDone() error {
	for i := 0; i < len(c.services); i++ {
		if err := <-c.done; err != nil {
			return err
		}
	}
	return nil
}

func (c *Core) StopServices() {
	for _, s := range c.services {
		s.Stop()
	}
}

var once sync.Once

func (c *Core) startShutdownSignalListener() {
	once.Do(func() {
		sigs := make(chan os.Signal, 1)
		signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			sig := <-sigs
			log.Printf("[INFO] got signal [%s]. shutting down app [%s] ...", sig, c.AppName)
			c.RootCancel() // broadcast to all child services via Context.Done()
		}()
	})
	log.Printf("[INFO][CORE] shutdown signal listener started")
}

func (c *Core) PrepareJobScheduler() {
	c.JobScheduler = schedjobs.NewScheduler(c.RootCtx)
	c.AddService(c.JobScheduler)
}

func (c *Core) PrepareWebService(addr string, router http.Handler) {
	c.WebService = web.NewService(c.RootCtx, addr, router)
	c.AddService(c.WebService)
}

// PrepareObjectStorage loads config/.storages.json and builds the
// attachment store client.
func (c *Core) PrepareObjectStorage() error {
	confBytes, err := os.ReadFile(filepath.Join(c.AppRoot, "config", ".storages.json"))
	if err != nil {
		return err
	}
	if err = json.Unmarshal(confBytes, &c.StorageConf); err != nil {
		return err
	}
	s3.Register()
	store, err := storages.New(&c.StorageConf)
	if err != nil {
		return err
	}
	if err = store.Init(); err != nil {
		return err
	}
	c.ObjectStorage = store
	return nil
}

func (c *Core) PrepareKVDatabase() error {
	confBytes, err := os.ReadFile(filepath.Join(c.AppRoot, "config", ".kv-databases.json"))
	if err != nil {
		return err
	}
	if err = json.Unmarshal(confBytes, &c.KVDBConf); err != nil {
		return err
	}
	switch c.KVDBConf.Type {
	case "redis":
		c.BackendKVDBClient = &redis.Client{Conf: &c.KVDBConf}
		if err = c.BackendKVDBClient.Init(); err != nil {
			return err
		}
	// case "memcached"
	default:
		return errors.New("unsupported key-value database type")
	}
	return nil
}

// PrepareSQLDatabase builds and inits the backing SQL client.
func (c *Core) PrepareSQLDatabase() error {
	confBytes, err := os.ReadFile(filepath.Join(c.AppRoot, "config", ".sql-databases.json"))
	if err != nil {
		return err
	}
	if err = json.Unmarshal(confBytes, &c.SQLDBConf); err != nil {
		return err
	}

	// Registering Supported Implementations
	pgsql.Register()
	mysql.Register()

	dbClient, err := sqldb.New(c.SQLDBConf.Type, &c.SQLDBConf)
	if err != nil {
		return err
	}
	if err = dbClient.Init(); err != nil {
		return err
	}
	c.BackendSQLClient = dbClient
	return nil
}

// PrepareWebSessions prepares WebSessionManager
// Prerequisite: BackendKVDBClient
func (c *Core) PrepareWebSessions() error {
	confBytes, err := os.ReadFile(filepath.Join(c.AppRoot, "config", ".web-session.json"))
	if err != nil {
		return err
	}
	if c.BackendKVDBClient == nil {
		return errors.New("backend KVDB client not ready")
	}
	mgr := &session.Manager{
		AppName:           c.AppName,
		BackendKVDBClient: c.BackendKVDBClient,
	}
	if err = json.Unmarshal(confBytes, &mgr.Conf); err != nil {
		return err
	}
	// Web Login Session Cipher
	cipher, err := sec.NewXChaCha20Poly1305CipherBase64([]byte(mgr.Conf.EncryptionKey))
	if err != nil {
		return fmt.Errorf("NewXChaCha20Poly1305Cipher: %v", err)
	}
	mgr.Cipher = cipher

	c.WebSessionManager = mgr
	return nil
}

// PrepareAuthServiceClient to resolve tokens against the auth service
// Prerequisite: BackendHttpClient
func (c *Core) PrepareAuthServiceClient() error {
	confBytes, err := os.ReadFile(filepath.Join(c.AppRoot, "config", ".auth-service.json"))
	if err != nil {
		return err
	}
	if c.BackendHttpClient == nil {
		return errors.New("backend http client not ready")
	}
	var clientConf authsvc.Conf
	if err = json.Unmarshal(confBytes, &clientConf); err != nil {
		return err
	}
	client, err := authsvc.NewClient(&clientConf)
	if err != nil {
		return err
	}
	client.Client = c.BackendHttpClient
	c.AuthServiceClient = client
	return nil
}

func (c *Core) ResourceCleanUp() {
	log.Println("[INFO] App Resource Cleaning Up...")
	if c.BackendKVDBClient != nil {
		if err := c.BackendKVDBClient.Close(); err != nil {
			log.Println("[ERROR] Failed to close KV database client")
		}
	}
	if c.BackendSQLClient != nil {
		dbType := c.BackendSQLClient.GetConf().Type
		if err := c.BackendSQLClient.Close(); err != nil {
			log.Printf("[ERROR][%s] Failed to close SQL DB client", dbType)
		} else {
			log.Printf("[INFO][%s] SQL DB client closed", dbType)
		}
	}
	log.Println("[INFO] App Resource Cleanup Complete")
}
