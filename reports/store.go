package reports

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"time"

	"github.com/sitetools/ops-core/db/sqldb"
	"github.com/sitetools/ops-core/orm"
)

//go:embed sql
var sqlFS embed.FS

var (
	// ErrDuplicateNumber - unique-constraint violation on a report number.
	// Handlers turn this into "a record with this number already exists".
	ErrDuplicateNumber = errors.New("a record with this number already exists")
	ErrNotFound        = errors.New("record not found")
)

// Store - SQL persistence for all report record types. Statements are
// loaded once from the embedded sql directory, rewritten for the
// client's placeholder dialect.
type Store struct {
	db    sqldb.Client
	stmts *sqldb.RawSQLStore
}

func NewStore(db sqldb.Client) (*Store, error) {
	stmts := sqldb.NewRawStore()
	err := stmts.LoadFromFS(sqlFS, "sql", db.GetConf().Type, db.PlaceholderPrefix())
	if err != nil {
		return nil, fmt.Errorf("reports store: %w", err)
	}
	return &Store{db: db, stmts: stmts}, nil
}

func mapInsertErr(err error) error {
	if sqldb.IsUniqueViolation(err) {
		return ErrDuplicateNumber
	}
	return err
}

func mapQueryErr(err error) error {
	if sqldb.IsNoRows(err) {
		return ErrNotFound
	}
	return err
}

//---- Organization ----

func (s *Store) Organization(ctx context.Context, orgID int64) (*OrganizationProfile, error) {
	org, err := sqldb.QueryItem[OrganizationProfile, *OrganizationProfile](
		ctx, s.db, s.stmts.MustGet("org_select"), orgID)
	if err != nil {
		return nil, mapQueryErr(err)
	}
	return org, nil
}

//---- Incident reports ----

func (s *Store) CreateIncident(ctx context.Context, r *IncidentReport) error {
	r.CreatedAt = time.Now().UTC()
	res, err := s.db.InsertStmt(ctx, s.stmts.MustGet("incident_insert"),
		r.Number, r.ReportType, r.OrgID, r.AuthorID, r.AuthorName,
		r.OccurredOn, r.Site, r.LocationDetail, r.Description,
		r.InjuredPerson, r.InjuryDetail,
		r.BasicCauses, r.HazardSources, r.RootCauses,
		r.CorrectiveActions, r.CreatedAt,
	)
	if err != nil {
		return mapInsertErr(err)
	}
	r.ID, err = res.LastInsertId()
	return err
}

func (s *Store) Incident(ctx context.Context, id int64) (*IncidentReport, error) {
	r, err := sqldb.QueryItem[IncidentReport, *IncidentReport](
		ctx, s.db, s.stmts.MustGet("incident_select"), id)
	if err != nil {
		return nil, mapQueryErr(err)
	}
	return r, nil
}

// IncidentsForUser - all of one author's reports, most recent first.
func (s *Store) IncidentsForUser(ctx context.Context, authorID string) ([]*IncidentReport, error) {
	return sqldb.QueryItems[IncidentReport, *IncidentReport](
		ctx, s.db, s.stmts.MustGet("incidents_for_user"), authorID)
}

func (s *Store) UpdateIncident(ctx context.Context, r *IncidentReport) error {
	_, err := s.db.Exec(ctx, s.stmts.MustGet("incident_update"),
		r.Site, r.LocationDetail, r.Description,
		r.InjuredPerson, r.InjuryDetail,
		r.BasicCauses, r.HazardSources, r.RootCauses,
		r.CorrectiveActions, r.ID,
	)
	return err
}

func (s *Store) DeleteIncident(ctx context.Context, id int64) error {
	_, err := s.db.Exec(ctx, s.stmts.MustGet("incident_delete"), id)
	return err
}

//---- DSE assessments ----

func (s *Store) CreateDSE(ctx context.Context, d *DSEAssessment) error {
	d.CreatedAt = time.Now().UTC()
	res, err := s.db.InsertStmt(ctx, s.stmts.MustGet("dse_insert"),
		d.Number, d.OrgID, d.AuthorID, d.EmployeeName, d.AssessedOn,
		d.ScreenReadable, d.KeyboardComfortable, d.ChairAdjustable,
		d.DeskSpaceAdequate, d.LightingAdequate, d.BreaksTaken,
		d.Notes, d.CreatedAt,
	)
	if err != nil {
		return mapInsertErr(err)
	}
	d.ID, err = res.LastInsertId()
	return err
}

func (s *Store) DSE(ctx context.Context, id int64) (*DSEAssessment, error) {
	d, err := sqldb.QueryItem[DSEAssessment, *DSEAssessment](
		ctx, s.db, s.stmts.MustGet("dse_select"), id)
	if err != nil {
		return nil, mapQueryErr(err)
	}
	return d, nil
}

func (s *Store) DSEsForUser(ctx context.Context, authorID string) ([]*DSEAssessment, error) {
	return sqldb.QueryItems[DSEAssessment, *DSEAssessment](
		ctx, s.db, s.stmts.MustGet("dses_for_user"), authorID)
}

//---- Toolbox talks ----

// CreateToolboxTalk inserts the talk and its attendees in one
// transaction, preserving attendee order.
func (s *Store) CreateToolboxTalk(ctx context.Context, t *ToolboxTalk, attendees []*Attendee) error {
	t.CreatedAt = time.Now().UTC()
	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(ctx) // no-op after commit
	}()

	res, err := tx.InsertStmt(ctx, s.stmts.MustGet("talk_insert"),
		t.Number, t.OrgID, t.Topic, t.PresenterName, t.HeldOn, t.Summary, t.CreatedAt,
	)
	if err != nil {
		return mapInsertErr(err)
	}
	t.ID, err = res.LastInsertId()
	if err != nil {
		return err
	}
	for _, a := range attendees {
		a.TalkID = t.ID
		ares, err := tx.InsertStmt(ctx, s.stmts.MustGet("attendee_insert"),
			a.TalkID, a.Name, a.SignedOn)
		if err != nil {
			return err
		}
		if a.ID, err = ares.LastInsertId(); err != nil {
			return err
		}
	}
	if err = tx.Commit(ctx); err != nil {
		return err
	}
	t.Attendees = orm.NewOrderedCollection[*Attendee, int64](attendees)
	return nil
}

func (s *Store) ToolboxTalk(ctx context.Context, id int64) (*ToolboxTalk, error) {
	t, err := sqldb.QueryItem[ToolboxTalk, *ToolboxTalk](
		ctx, s.db, s.stmts.MustGet("talk_select"), id)
	if err != nil {
		return nil, mapQueryErr(err)
	}
	attendees, err := sqldb.QueryCollection[Attendee, *Attendee, int64](
		ctx, s.db, s.stmts.MustGet("attendees_for_talk"), t.ID)
	if err != nil {
		return nil, err
	}
	t.Attendees = attendees
	return t, nil
}

// ToolboxTalksForOrg - all talks of an org with attendees linked,
// most recent first.
func (s *Store) ToolboxTalksForOrg(ctx context.Context, orgID int64) (*orm.Collection[*ToolboxTalk, int64], error) {
	talks, err := sqldb.QueryCollection[ToolboxTalk, *ToolboxTalk, int64](
		ctx, s.db, s.stmts.MustGet("talks_for_org"), orgID)
	if err != nil {
		return nil, err
	}
	if talks.Len() == 0 {
		return talks, nil
	}
	_, err = sqldb.LoadHasMany[*ToolboxTalk, int64, Attendee, *Attendee, int64](
		ctx, s.db, s.db.PlaceholderPrefix(), talks,
		s.stmts.MustGet("attendees_select_base"), "talk_id",
		func(a *Attendee) int64 { return a.TalkID },
		func(t *ToolboxTalk) **orm.Collection[*Attendee, int64] { return &t.Attendees },
	)
	if err != nil {
		return nil, err
	}
	return talks, nil
}

//---- Site check-ins ----

func (s *Store) CheckIn(ctx context.Context, c *SiteCheckin) error {
	c.CheckedInAt = time.Now().UTC()
	res, err := s.db.InsertStmt(ctx, s.stmts.MustGet("checkin_insert"),
		c.OrgID, c.UserID, c.UserName, c.Site, c.CheckedInAt)
	if err != nil {
		return err
	}
	c.ID, err = res.LastInsertId()
	return err
}

// CheckOut closes the user's open check-in, if any.
func (s *Store) CheckOut(ctx context.Context, userID string) error {
	_, err := s.db.Exec(ctx, s.stmts.MustGet("checkin_checkout"),
		time.Now().UTC(), userID)
	return err
}

func (s *Store) OpenCheckins(ctx context.Context, orgID int64) ([]*SiteCheckin, error) {
	return sqldb.QueryItems[SiteCheckin, *SiteCheckin](
		ctx, s.db, s.stmts.MustGet("checkins_open_for_org"), orgID)
}

//---- Projects ----

func (s *Store) CreateProject(ctx context.Context, p *Project) error {
	p.CreatedAt = time.Now().UTC()
	res, err := s.db.InsertStmt(ctx, s.stmts.MustGet("project_insert"),
		p.OrgID, p.Name, p.ClientName, p.Site, p.Status, p.StartedOn, p.Notes, p.CreatedAt)
	if err != nil {
		return err
	}
	p.ID, err = res.LastInsertId()
	return err
}

func (s *Store) ProjectsForOrg(ctx context.Context, orgID int64) ([]*Project, error) {
	return sqldb.QueryItems[Project, *Project](
		ctx, s.db, s.stmts.MustGet("projects_for_org"), orgID)
}
