package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/donaldgifford/offer-finder/pkg/availability"
	domain "github.com/donaldgifford/offer-finder/pkg/types"
)

const defaultPoolSize = 10

// pgForeignKeyViolation is the SQLSTATE for foreign_key_violation.
const pgForeignKeyViolation = "23503"

// PostgresStore implements Store using pgxpool (connection-pooled PostgreSQL).
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new PostgresStore with connection pooling.
// A poolSize of zero or less uses the default.
func NewPostgresStore(ctx context.Context, connString string, poolSize int32) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	cfg.MaxConns = defaultPoolSize
	if poolSize > 0 {
		cfg.MaxConns = poolSize
	}

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

// GetUser returns a user's saved settings. Location is nil when the user has
// never set a country.
func (s *PostgresStore) GetUser(ctx context.Context, id string) (*domain.User, error) {
	u, err := scanUser(s.pool.QueryRow(ctx, queryGetUser, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting user %s: %w", id, err)
	}
	return u, nil
}

// UpsertUserLocation stores a user's shipping location, creating the user row
// if needed. An empty preferredCurrency keeps the existing one.
func (s *PostgresStore) UpsertUserLocation(
	ctx context.Context,
	userID string,
	loc domain.Location,
	preferredCurrency string,
) (*domain.User, error) {
	args := pgx.NamedArgs{
		"id":                 userID,
		"country_code":       domain.NormalizeCountry(loc.CountryCode),
		"city":               loc.City,
		"preferred_currency": preferredCurrency,
	}

	u, err := scanUser(s.pool.QueryRow(ctx, queryUpsertUserLocation, args))
	if err != nil {
		return nil, fmt.Errorf("upserting user location: %w", err)
	}
	return u, nil
}

// CreateItem inserts a wishlist item, assigning its ID and timestamps. The
// owning user row is created if it does not exist yet.
func (s *PostgresStore) CreateItem(ctx context.Context, it *domain.Item) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // no-op after commit

	if _, err := tx.Exec(ctx, queryEnsureUser, it.UserID); err != nil {
		return fmt.Errorf("ensuring user: %w", err)
	}

	if it.ID == "" {
		it.ID = uuid.NewString()
	}
	it.Domain = domain.NormalizeDomain(it.Domain)

	args := pgx.NamedArgs{
		"id":         it.ID,
		"user_id":    it.UserID,
		"title":      it.Title,
		"price":      it.Price,
		"currency":   it.Currency,
		"url":        it.URL,
		"store_name": it.StoreName,
		"domain":     it.Domain,
	}
	if err := tx.QueryRow(ctx, queryCreateItem, args).Scan(&it.CreatedAt, &it.UpdatedAt); err != nil {
		return fmt.Errorf("creating item: %w", err)
	}

	return tx.Commit(ctx)
}

// GetItem returns one of a user's items.
func (s *PostgresStore) GetItem(ctx context.Context, userID, itemID string) (*domain.Item, error) {
	if _, err := uuid.Parse(itemID); err != nil {
		return nil, ErrNotFound
	}

	it := &domain.Item{}
	err := scanItem(s.pool.QueryRow(ctx, queryGetItem, userID, itemID), it)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting item: %w", err)
	}
	return it, nil
}

// ListItems queries a user's items with optional filters, returning results
// and total count.
func (s *PostgresStore) ListItems(ctx context.Context, q *ItemQuery) ([]domain.Item, int, error) {
	dataSQL, countSQL, args := q.ToSQL()

	var total int
	if err := s.pool.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting items: %w", err)
	}

	rows, err := s.pool.Query(ctx, dataSQL, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("querying items: %w", err)
	}
	defer rows.Close()

	items := []domain.Item{}
	for rows.Next() {
		var it domain.Item
		if err := scanItem(rows, &it); err != nil {
			return nil, 0, fmt.Errorf("scanning item: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterating items: %w", err)
	}

	return items, total, nil
}

// DeleteItem removes one of a user's items.
func (s *PostgresStore) DeleteItem(ctx context.Context, userID, itemID string) error {
	if _, err := uuid.Parse(itemID); err != nil {
		return ErrNotFound
	}

	tag, err := s.pool.Exec(ctx, queryDeleteItem, userID, itemID)
	if err != nil {
		return fmt.Errorf("deleting item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// GetStoreProfile returns a store and its shipping rules. A missing store is
// reported as availability.ErrStoreNotFound so callers can skip it.
func (s *PostgresStore) GetStoreProfile(
	ctx context.Context,
	storeDomain string,
) (*domain.StoreProfile, error) {
	storeDomain = domain.NormalizeDomain(storeDomain)

	p := &domain.StoreProfile{}
	err := scanStore(s.pool.QueryRow(ctx, queryGetStore, storeDomain), &p.Store)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, availability.ErrStoreNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting store %s: %w", storeDomain, err)
	}

	rows, err := s.pool.Query(ctx, queryListRulesForStore, storeDomain)
	if err != nil {
		return nil, fmt.Errorf("querying shipping rules for %s: %w", storeDomain, err)
	}
	defer rows.Close()

	p.Rules = []domain.ShippingRule{}
	for rows.Next() {
		var r domain.ShippingRule
		if err := scanRule(rows, &r); err != nil {
			return nil, fmt.Errorf("scanning shipping rule: %w", err)
		}
		p.Rules = append(p.Rules, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating shipping rules: %w", err)
	}

	return p, nil
}

// ListStoreProfiles returns every store with its rules, ordered by domain.
func (s *PostgresStore) ListStoreProfiles(ctx context.Context) ([]domain.StoreProfile, error) {
	rows, err := s.pool.Query(ctx, queryListStores)
	if err != nil {
		return nil, fmt.Errorf("querying stores: %w", err)
	}
	defer rows.Close()

	profiles := []domain.StoreProfile{}
	index := make(map[string]int)
	for rows.Next() {
		var st domain.Store
		if err := scanStore(rows, &st); err != nil {
			return nil, fmt.Errorf("scanning store: %w", err)
		}
		index[st.Domain] = len(profiles)
		profiles = append(profiles, domain.StoreProfile{Store: st, Rules: []domain.ShippingRule{}})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating stores: %w", err)
	}
	rows.Close()

	ruleRows, err := s.pool.Query(ctx, queryListAllRules)
	if err != nil {
		return nil, fmt.Errorf("querying shipping rules: %w", err)
	}
	defer ruleRows.Close()

	for ruleRows.Next() {
		var r domain.ShippingRule
		if err := scanRule(ruleRows, &r); err != nil {
			return nil, fmt.Errorf("scanning shipping rule: %w", err)
		}
		if i, ok := index[r.StoreDomain]; ok {
			profiles[i].Rules = append(profiles[i].Rules, r)
		}
	}

	return profiles, ruleRows.Err()
}

// UpsertStore inserts or updates a store by domain.
func (s *PostgresStore) UpsertStore(ctx context.Context, st *domain.Store) error {
	st.Domain = domain.NormalizeDomain(st.Domain)

	countries := make([]string, 0, len(st.CountriesSupported))
	for _, c := range st.CountriesSupported {
		if c = domain.NormalizeCountry(c); c != "" {
			countries = append(countries, c)
		}
	}
	st.CountriesSupported = countries

	args := pgx.NamedArgs{
		"domain":              st.Domain,
		"name":                st.Name,
		"countries_supported": st.CountriesSupported,
		"requires_city":       st.RequiresCity,
	}

	if err := s.pool.QueryRow(ctx, queryUpsertStore, args).Scan(&st.CreatedAt, &st.UpdatedAt); err != nil {
		return fmt.Errorf("upserting store: %w", err)
	}
	return nil
}

// DeleteStore removes a store and, by cascade, its shipping rules.
func (s *PostgresStore) DeleteStore(ctx context.Context, storeDomain string) error {
	tag, err := s.pool.Exec(ctx, queryDeleteStore, domain.NormalizeDomain(storeDomain))
	if err != nil {
		return fmt.Errorf("deleting store: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return availability.ErrStoreNotFound
	}
	return nil
}

// UpsertShippingRule inserts or replaces the rule for (store, country). The
// store must already exist.
func (s *PostgresStore) UpsertShippingRule(ctx context.Context, r *domain.ShippingRule) error {
	r.StoreDomain = domain.NormalizeDomain(r.StoreDomain)
	r.CountryCode = domain.NormalizeCountry(r.CountryCode)

	args := pgx.NamedArgs{
		"store_domain":     r.StoreDomain,
		"country_code":     r.CountryCode,
		"ships_to_country": r.ShipsToCountry,
		"ships_to_city":    r.ShipsToCity,
		"city_whitelist":   encodeCityList(r.CityWhitelist),
		"city_blacklist":   encodeCityList(r.CityBlacklist),
	}

	err := s.pool.QueryRow(ctx, queryUpsertRule, args).Scan(&r.UpdatedAt)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
		return availability.ErrStoreNotFound
	}
	if err != nil {
		return fmt.Errorf("upserting shipping rule: %w", err)
	}
	return nil
}

// DeleteShippingRule removes the rule for (store, country).
func (s *PostgresStore) DeleteShippingRule(ctx context.Context, storeDomain, countryCode string) error {
	tag, err := s.pool.Exec(ctx, queryDeleteRule,
		domain.NormalizeDomain(storeDomain), domain.NormalizeCountry(countryCode),
	)
	if err != nil {
		return fmt.Errorf("deleting shipping rule: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// scannable abstracts pgx.Row and pgx.Rows for reuse.
type scannable interface {
	Scan(dest ...any) error
}

func scanUser(row scannable) (*domain.User, error) {
	u := &domain.User{}
	var country, city string
	if err := row.Scan(&u.ID, &country, &city, &u.PreferredCurrency, &u.UpdatedAt); err != nil {
		return nil, err
	}
	if country != "" {
		u.Location = &domain.Location{CountryCode: country, City: city}
	}
	return u, nil
}

func scanItem(row scannable, it *domain.Item) error {
	return row.Scan(
		&it.ID, &it.UserID, &it.Title, &it.Price, &it.Currency, &it.URL,
		&it.StoreName, &it.Domain, &it.CreatedAt, &it.UpdatedAt,
	)
}

func scanStore(row scannable, st *domain.Store) error {
	return row.Scan(
		&st.Domain, &st.Name, &st.CountriesSupported, &st.RequiresCity,
		&st.CreatedAt, &st.UpdatedAt,
	)
}

// scanRule scans a shipping rule, decoding its JSONB city lists.
func scanRule(row scannable, r *domain.ShippingRule) error {
	var whitelist, blacklist []byte
	if err := row.Scan(
		&r.StoreDomain, &r.CountryCode, &r.ShipsToCountry, &r.ShipsToCity,
		&whitelist, &blacklist, &r.UpdatedAt,
	); err != nil {
		return err
	}

	var err error
	if r.CityWhitelist, err = decodeCityList(whitelist); err != nil {
		return fmt.Errorf("rule %s/%s whitelist: %w", r.StoreDomain, r.CountryCode, err)
	}
	if r.CityBlacklist, err = decodeCityList(blacklist); err != nil {
		return fmt.Errorf("rule %s/%s blacklist: %w", r.StoreDomain, r.CountryCode, err)
	}
	return nil
}
