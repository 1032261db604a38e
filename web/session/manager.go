package session

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/sitetools/ops-core/db/kvdb"
	"github.com/sitetools/ops-core/sec"
	"github.com/sitetools/ops-core/web/login"
)

const CookieName = "__Host-wsession"

type Manager struct {
	Conf              Conf
	Cipher            *sec.XChaCha20Poly1305Cipher
	AppName           string // for session key, etc.
	BackendKVDBClient kvdb.Client
}

func (m *Manager) WebSessionIDToKVDBKey(sessionID string) string {
	return m.AppName + "_wsession:" + sessionID
}

// CreateWebSession stores the user's login info under a fresh session id
// and sets the encrypted cookie.
func (m *Manager) CreateWebSession(ctx context.Context, w http.ResponseWriter, user *login.UserInfo) error {
	sessionID, err := GenerateWebSessionID()
	if err != nil {
		return err
	}
	key := m.WebSessionIDToKVDBKey(sessionID)
	err = m.BackendKVDBClient.SetFields(ctx, key, map[string]any{
		"uid":          user.IDStr,
		"display_name": user.DisplayName,
		"email":        user.Email,
		"role":         user.Role,
	})
	if err != nil {
		return err
	}
	_, err = m.BackendKVDBClient.Expire(ctx, key, time.Duration(m.Conf.ExpireSliding)*time.Second)
	if err != nil {
		return err
	}
	return m.SetWebSessionCookie(w, sessionID)
}

// UserFromCookie resolves the session cookie to the logged-in user,
// refreshing the sliding expiry on hit.
func (m *Manager) UserFromCookie(ctx context.Context, r *http.Request) (*login.UserInfo, bool) {
	webSessionCookie, err := r.Cookie(CookieName)
	if err != nil {
		return nil, false
	}
	webSessionID, err := m.Cipher.DecodeDecrypt(webSessionCookie.Value) // []byte
	if err != nil {
		return nil, false
	}
	key := m.WebSessionIDToKVDBKey(string(webSessionID))
	fields, err := m.BackendKVDBClient.GetAllFields(ctx, key)
	if err != nil || len(fields) == 0 {
		return nil, false
	}
	_, _ = m.BackendKVDBClient.Expire(ctx, key, time.Duration(m.Conf.ExpireSliding)*time.Second)
	return &login.UserInfo{
		IDStr:       fields["uid"],
		DisplayName: fields["display_name"],
		Email:       fields["email"],
		Role:        fields["role"],
	}, true
}

// DestroyWebSession deletes the server-side session and expires the cookie.
func (m *Manager) DestroyWebSession(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	if webSessionCookie, err := r.Cookie(CookieName); err == nil {
		if webSessionID, decErr := m.Cipher.DecodeDecrypt(webSessionCookie.Value); decErr == nil {
			_, _ = m.BackendKVDBClient.Delete(ctx, m.WebSessionIDToKVDBKey(string(webSessionID)))
		}
	}
	m.RemoveWebSessionCookie(w)
}

func (m *Manager) SetWebSessionCookie(w http.ResponseWriter, webSessionID string) error {
	encWebSessionID, err := m.Cipher.EncryptEncode([]byte(webSessionID))
	if err != nil {
		return fmt.Errorf("failed to encrypt web login session id. %v", err)
	}
	http.SetCookie(w, &http.Cookie{
		Name:  CookieName,
		Value: encWebSessionID,
		Path:  "/", // Subpaths will get this cookie.
		// Domain: // Cannot be set with `__Host-`
		HttpOnly: true, // JS cannot read it
		Secure:   true, // only sent over HTTPS
		MaxAge:   m.Conf.ExpireHardcap,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

func (m *Manager) RemoveWebSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Path:     "/",
		MaxAge:   -1, // Delete
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	})
}
