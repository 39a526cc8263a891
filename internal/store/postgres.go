package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domain "github.com/donaldgifford/deal-desk/pkg/types"
)

const defaultPoolSize = 10

// PostgresStore implements Store using pgxpool (connection-pooled PostgreSQL).
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new PostgresStore with connection pooling. A
// non-positive poolSize uses the default of 10 connections.
func NewPostgresStore(ctx context.Context, connString string, poolSize int) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	if poolSize <= 0 {
		poolSize = defaultPoolSize
	}
	cfg.MaxConns = int32(min(poolSize, 1<<15)) //nolint:gosec // bounded above

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Pool exposes the underlying pool for migration tooling.
func (s *PostgresStore) Pool() *pgxpool.Pool {
	return s.pool
}

// Close gracefully shuts down the connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

// Ping verifies the database connection is alive.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Migrate applies pending SQL schema migrations.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	return RunMigrations(ctx, s.pool)
}

// CreateLead inserts a lead and sets its generated ID. A zero DateAdded is
// stamped with the current time.
func (s *PostgresStore) CreateLead(ctx context.Context, l *domain.Lead) error {
	if l.DateAdded.IsZero() {
		l.DateAdded = time.Now().UTC()
	}
	args := leadArgs(l)
	args["date_added"] = l.DateAdded
	args["last_contact_date"] = l.LastContactAt
	args["touch_count_week"] = l.TouchCountWeek

	if err := s.pool.QueryRow(ctx, queryCreateLead, args).Scan(&l.ID); err != nil {
		return fmt.Errorf("creating lead: %w", err)
	}
	return nil
}

// GetLead retrieves a lead by ID. It returns pgx.ErrNoRows when absent.
func (s *PostgresStore) GetLead(ctx context.Context, id string) (*domain.Lead, error) {
	l := &domain.Lead{}
	if err := scanLead(s.pool.QueryRow(ctx, queryGetLead, id), l); err != nil {
		return nil, err
	}
	return l, nil
}

// ListLeads queries leads with optional filters, returning results and total count.
func (s *PostgresStore) ListLeads(ctx context.Context, opts *LeadQuery) ([]domain.Lead, int, error) {
	dataSQL, countSQL, args := opts.ToSQL()

	var total int
	if err := s.pool.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting leads: %w", err)
	}

	leads, err := s.queryLeads(ctx, dataSQL, args...)
	if err != nil {
		return nil, 0, err
	}
	return leads, total, nil
}

// AllLeads returns every lead in insertion order.
func (s *PostgresStore) AllLeads(ctx context.Context) ([]domain.Lead, error) {
	return s.queryLeads(ctx, queryAllLeads)
}

// UpdateLead rewrites a lead's editable fields. Outreach counters are owned
// by RecordInteraction and ResetWeeklyTouches and are left untouched.
func (s *PostgresStore) UpdateLead(ctx context.Context, l *domain.Lead) error {
	args := leadArgs(l)
	args["id"] = l.ID

	tag, err := s.pool.Exec(ctx, queryUpdateLead, args)
	if err != nil {
		return fmt.Errorf("updating lead: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// DeleteLead removes a lead and, by cascade, its feedback records.
func (s *PostgresStore) DeleteLead(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, queryDeleteLead, id)
	if err != nil {
		return fmt.Errorf("deleting lead: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// CreateListing inserts a listing and sets its generated ID.
func (s *PostgresStore) CreateListing(ctx context.Context, l *domain.Listing) error {
	if l.DateAdded.IsZero() {
		l.DateAdded = time.Now().UTC()
	}
	args := listingArgs(l)
	args["date_added"] = l.DateAdded
	args["last_contact_date"] = l.LastContactAt
	args["touch_count_week"] = l.TouchCountWeek

	if err := s.pool.QueryRow(ctx, queryCreateListing, args).Scan(&l.ID); err != nil {
		return fmt.Errorf("creating listing: %w", err)
	}
	return nil
}

// GetListing retrieves a listing by ID. It returns pgx.ErrNoRows when absent.
func (s *PostgresStore) GetListing(ctx context.Context, id string) (*domain.Listing, error) {
	l := &domain.Listing{}
	if err := scanListing(s.pool.QueryRow(ctx, queryGetListing, id), l); err != nil {
		return nil, err
	}
	return l, nil
}

// ListListings queries listings with optional filters, returning results and total count.
func (s *PostgresStore) ListListings(
	ctx context.Context,
	opts *ListingQuery,
) ([]domain.Listing, int, error) {
	dataSQL, countSQL, args := opts.ToSQL()

	var total int
	if err := s.pool.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting listings: %w", err)
	}

	listings, err := s.queryListings(ctx, dataSQL, args...)
	if err != nil {
		return nil, 0, err
	}
	return listings, total, nil
}

// AllListings returns every listing in insertion order.
func (s *PostgresStore) AllListings(ctx context.Context) ([]domain.Listing, error) {
	return s.queryListings(ctx, queryAllListings)
}

// UpdateListing rewrites a listing's editable fields.
func (s *PostgresStore) UpdateListing(ctx context.Context, l *domain.Listing) error {
	args := listingArgs(l)
	args["id"] = l.ID

	tag, err := s.pool.Exec(ctx, queryUpdateListing, args)
	if err != nil {
		return fmt.Errorf("updating listing: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// DeleteListing removes a listing and, by cascade, its feedback records.
func (s *PostgresStore) DeleteListing(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, queryDeleteListing, id)
	if err != nil {
		return fmt.Errorf("deleting listing: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// RecordInteraction appends the interaction and, in the same transaction,
// moves the entity's last contact date forward, increments its weekly touch
// count and stores the recomputed priority score. It returns pgx.ErrNoRows
// when the entity does not exist.
func (s *PostgresStore) RecordInteraction(
	ctx context.Context,
	in *domain.Interaction,
	priorityScore int,
) error {
	contactQuery := queryRecordLeadContact
	if in.EntityKind == domain.KindListing {
		contactQuery = queryRecordListingContact
	}

	return pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, contactQuery, in.EntityID, in.Date, priorityScore)
		if err != nil {
			return fmt.Errorf("recording contact: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return pgx.ErrNoRows
		}

		args := pgx.NamedArgs{
			"entity_id":   in.EntityID,
			"entity_kind": string(in.EntityKind),
			"type":        string(in.Type),
			"notes":       in.Notes,
			"sentiment":   string(in.Sentiment),
			"date":        in.Date,
		}
		if err := tx.QueryRow(ctx, queryInsertInteraction, args).Scan(&in.ID); err != nil {
			return fmt.Errorf("inserting interaction: %w", err)
		}
		return nil
	})
}

// ListInteractions returns the newest interactions, optionally for one entity.
func (s *PostgresStore) ListInteractions(
	ctx context.Context,
	entityID string,
	limit int,
) ([]domain.Interaction, error) {
	limit, _ = page(limit, 0)

	rows, err := s.pool.Query(ctx, queryListInteractions, entityID, limit)
	if err != nil {
		return nil, fmt.Errorf("querying interactions: %w", err)
	}

	interactions, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Interaction, error) {
		var in domain.Interaction
		err := row.Scan(&in.ID, &in.EntityID, &in.EntityKind, &in.Type, &in.Notes, &in.Sentiment, &in.Date)
		return in, err
	})
	if err != nil {
		return nil, fmt.Errorf("scanning interactions: %w", err)
	}
	return interactions, nil
}

// UpdatePriorityScores writes cached scores for one entity kind in a single
// batch, skipping rows whose score is unchanged. It returns the number of
// rows rewritten.
func (s *PostgresStore) UpdatePriorityScores(
	ctx context.Context,
	kind domain.EntityKind,
	scores map[string]int,
) (int, error) {
	if len(scores) == 0 {
		return 0, nil
	}

	query := queryUpdateLeadScore
	if kind == domain.KindListing {
		query = queryUpdateListingScore
	}

	batch := &pgx.Batch{}
	for id, score := range scores {
		batch.Queue(query, id, score)
	}

	results := s.pool.SendBatch(ctx, batch)
	defer results.Close()

	var updated int
	for range scores {
		tag, err := results.Exec()
		if err != nil {
			return updated, fmt.Errorf("updating %s priority score: %w", kind, err)
		}
		updated += int(tag.RowsAffected())
	}
	return updated, nil
}

// ResetWeeklyTouches zeroes touch_count_week on every lead and listing and
// records the reset. It returns the number of rows changed.
func (s *PostgresStore) ResetWeeklyTouches(ctx context.Context) (int64, error) {
	var total int64
	err := pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		for _, q := range []string{queryResetLeadTouches, queryResetListingTouches} {
			tag, err := tx.Exec(ctx, q)
			if err != nil {
				return err
			}
			total += tag.RowsAffected()
		}
		_, err := tx.Exec(ctx, queryRecordTouchReset, total)
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("resetting weekly touches: %w", err)
	}
	return total, nil
}

// UpsertFeedback stores the current response for a lead/listing pair,
// replacing any earlier one.
func (s *PostgresStore) UpsertFeedback(ctx context.Context, f *domain.MatchFeedback) error {
	if _, err := s.pool.Exec(ctx, queryUpsertFeedback,
		f.LeadID, f.ListingID, string(f.Status), f.Timestamp,
	); err != nil {
		return fmt.Errorf("upserting feedback: %w", err)
	}
	return nil
}

// ListFeedback returns feedback records newest first, optionally for one lead.
func (s *PostgresStore) ListFeedback(ctx context.Context, leadID string) ([]domain.MatchFeedback, error) {
	rows, err := s.pool.Query(ctx, queryListFeedback, leadID)
	if err != nil {
		return nil, fmt.Errorf("querying feedback: %w", err)
	}

	records, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.MatchFeedback, error) {
		var f domain.MatchFeedback
		err := row.Scan(&f.LeadID, &f.ListingID, &f.Status, &f.Timestamp)
		return f, err
	})
	if err != nil {
		return nil, fmt.Errorf("scanning feedback: %w", err)
	}
	return records, nil
}

// CreateBroker inserts a broker and sets its ID and creation time.
func (s *PostgresStore) CreateBroker(ctx context.Context, b *domain.Broker) error {
	if err := s.pool.QueryRow(ctx, queryCreateBroker,
		b.Name, b.Firm, b.Email, b.DealsClosed, b.ReferralFee,
	).Scan(&b.ID, &b.CreatedAt); err != nil {
		return fmt.Errorf("creating broker: %w", err)
	}
	return nil
}

// GetBroker retrieves a broker by ID. It returns pgx.ErrNoRows when absent.
func (s *PostgresStore) GetBroker(ctx context.Context, id string) (*domain.Broker, error) {
	b := &domain.Broker{}
	if err := scanBroker(s.pool.QueryRow(ctx, queryGetBroker, id), b); err != nil {
		return nil, err
	}
	return b, nil
}

// ListBrokers returns every broker, most deals closed first.
func (s *PostgresStore) ListBrokers(ctx context.Context) ([]domain.Broker, error) {
	rows, err := s.pool.Query(ctx, queryListBrokers)
	if err != nil {
		return nil, fmt.Errorf("querying brokers: %w", err)
	}

	brokers, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Broker, error) {
		var b domain.Broker
		err := scanBroker(row, &b)
		return b, err
	})
	if err != nil {
		return nil, fmt.Errorf("scanning brokers: %w", err)
	}
	return brokers, nil
}

// CreateTask inserts a task and sets its ID and creation time.
func (s *PostgresStore) CreateTask(ctx context.Context, t *domain.Task) error {
	var related *string
	if t.RelatedEntityID != "" {
		related = &t.RelatedEntityID
	}
	priority := t.Priority
	if priority == "" {
		priority = domain.TaskNormal
	}

	if err := s.pool.QueryRow(ctx, queryCreateTask,
		t.Title, t.DueDate, t.Completed, related, string(priority),
	).Scan(&t.ID, &t.CreatedAt); err != nil {
		return fmt.Errorf("creating task: %w", err)
	}
	t.Priority = priority
	return nil
}

// ListTasks returns open tasks ordered by due date, followed by completed
// ones when includeCompleted is set.
func (s *PostgresStore) ListTasks(ctx context.Context, includeCompleted bool) ([]domain.Task, error) {
	rows, err := s.pool.Query(ctx, queryListTasks, includeCompleted)
	if err != nil {
		return nil, fmt.Errorf("querying tasks: %w", err)
	}

	tasks, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Task, error) {
		var t domain.Task
		err := row.Scan(&t.ID, &t.Title, &t.DueDate, &t.Completed, &t.RelatedEntityID, &t.Priority, &t.CreatedAt)
		return t, err
	})
	if err != nil {
		return nil, fmt.Errorf("scanning tasks: %w", err)
	}
	return tasks, nil
}

// CompleteTask marks a task done. It returns pgx.ErrNoRows when absent.
func (s *PostgresStore) CompleteTask(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, queryCompleteTask, id)
	if err != nil {
		return fmt.Errorf("completing task: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// GetPipelineSummary returns aggregate counts in a single round trip.
func (s *PostgresStore) GetPipelineSummary(ctx context.Context) (*domain.PipelineSummary, error) {
	p := &domain.PipelineSummary{}
	if err := s.pool.QueryRow(ctx, queryPipelineSummary).Scan(
		&p.LeadsTotal, &p.LeadsActive,
		&p.ListingsTotal, &p.ListingsHot,
		&p.FeedbackPending, &p.TasksOpen, &p.OnboardingQueue,
	); err != nil {
		return nil, fmt.Errorf("querying pipeline summary: %w", err)
	}
	return p, nil
}

func (s *PostgresStore) queryLeads(ctx context.Context, query string, args ...any) ([]domain.Lead, error) {
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying leads: %w", err)
	}

	leads, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Lead, error) {
		var l domain.Lead
		err := scanLead(row, &l)
		return l, err
	})
	if err != nil {
		return nil, fmt.Errorf("scanning leads: %w", err)
	}
	return leads, nil
}

func (s *PostgresStore) queryListings(ctx context.Context, query string, args ...any) ([]domain.Listing, error) {
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying listings: %w", err)
	}

	listings, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Listing, error) {
		var l domain.Listing
		err := scanListing(row, &l)
		return l, err
	})
	if err != nil {
		return nil, fmt.Errorf("scanning listings: %w", err)
	}
	return listings, nil
}

func leadArgs(l *domain.Lead) pgx.NamedArgs {
	industries := make([]string, len(l.PreferredIndustries))
	for i, ind := range l.PreferredIndustries {
		industries[i] = string(ind)
	}

	var onboarding *string
	if l.OnboardingStatus != nil {
		s := string(*l.OnboardingStatus)
		onboarding = &s
	}

	status := l.Status
	if status == "" {
		status = domain.LeadActive
	}

	return pgx.NamedArgs{
		"name":                 l.Name,
		"role":                 l.Role,
		"nationality":          l.Nationality,
		"email":                l.Email,
		"phone":                l.Phone,
		"min_budget":           l.MinBudget,
		"max_budget":           l.MaxBudget,
		"preferred_industries": industries,
		"location_preference":  l.LocationPreference,
		"notes":                l.Notes,
		"status":               string(status),
		"onboarding_status":    onboarding,
		"priority_score":       l.PriorityScore,
	}
}

func listingArgs(l *domain.Listing) pgx.NamedArgs {
	listingType := l.Type
	if listingType == "" {
		listingType = domain.ListingSale
	}
	stage := l.Stage
	if stage == "" {
		stage = domain.StageNew
	}
	amenities := l.Amenities
	if amenities == nil {
		amenities = []string{}
	}

	return pgx.NamedArgs{
		"title":          l.Title,
		"listing_type":   string(listingType),
		"description":    l.Description,
		"industry":       string(l.Industry),
		"location":       l.Location,
		"sqft":           l.Sqft,
		"staff_count":    l.StaffCount,
		"amenities":      amenities,
		"asking_price":   l.AskingPrice,
		"annual_rent":    l.AnnualRent,
		"revenue":        l.Revenue,
		"ebitda":         l.EBITDA,
		"cashflow":       l.Cashflow,
		"stage":          string(stage),
		"seller_name":    l.SellerName,
		"seller_contact": l.SellerContact,
		"priority_score": l.PriorityScore,
	}
}

// scanLead scans a lead in leadColumns order.
func scanLead(row pgx.Row, l *domain.Lead) error {
	var (
		industries []string
		onboarding *string
	)
	if err := row.Scan(
		&l.ID, &l.Name, &l.Role, &l.Nationality, &l.Email, &l.Phone,
		&l.MinBudget, &l.MaxBudget, &industries, &l.LocationPreference, &l.Notes,
		&l.Status, &onboarding, &l.DateAdded, &l.LastContactAt,
		&l.TouchCountWeek, &l.PriorityScore,
	); err != nil {
		return err
	}

	l.PreferredIndustries = make([]domain.Industry, len(industries))
	for i, ind := range industries {
		l.PreferredIndustries[i] = domain.Industry(ind)
	}
	if onboarding != nil {
		s := domain.OnboardingStatus(*onboarding)
		l.OnboardingStatus = &s
	}
	return nil
}

// scanListing scans a listing in listingColumns order.
func scanListing(row pgx.Row, l *domain.Listing) error {
	return row.Scan(
		&l.ID, &l.Title, &l.Type, &l.Description, &l.Industry, &l.Location,
		&l.Sqft, &l.StaffCount, &l.Amenities,
		&l.AskingPrice, &l.AnnualRent, &l.Revenue, &l.EBITDA, &l.Cashflow, &l.Stage,
		&l.SellerName, &l.SellerContact, &l.DateAdded, &l.LastContactAt,
		&l.TouchCountWeek, &l.PriorityScore,
	)
}

func scanBroker(row pgx.Row, b *domain.Broker) error {
	return row.Scan(&b.ID, &b.Name, &b.Firm, &b.Email, &b.DealsClosed, &b.ReferralFee, &b.CreatedAt)
}
