package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/donaldgifford/offer-finder/internal/metrics"
	"github.com/donaldgifford/offer-finder/internal/notify"
	"github.com/donaldgifford/offer-finder/internal/store"
	"github.com/donaldgifford/offer-finder/pkg/availability"
	"github.com/donaldgifford/offer-finder/pkg/currency"
	"github.com/donaldgifford/offer-finder/pkg/extract"
	domain "github.com/donaldgifford/offer-finder/pkg/types"
)

const instrumentationName = "github.com/donaldgifford/offer-finder/internal/engine"

// Operation labels for evaluation metrics.
const (
	opFindOtherStores  = "find_other_stores"
	opFindAlternatives = "find_alternatives"
)

// ErrEmptyTitle is returned by FindAlternatives when the request has no title.
var ErrEmptyTitle = errors.New("title is required")

// QuotaReporter exposes the offer source's daily call count.
type QuotaReporter interface {
	DailyCount() int64
}

// OtherStoresResult is the response of the profile-based search.
type OtherStoresResult struct {
	Stores            []domain.CandidateOffer   `json:"stores"`
	UnavailableStores []domain.UnavailableOffer `json:"unavailableStores"`
	UserLocation      *domain.Location          `json:"userLocation"`
	CityRequired      bool                      `json:"cityRequired"`
	HasLocation       bool                      `json:"hasLocation"`
	Message           *string                   `json:"message"`
}

// AlternativesRequest is the input of the inline-location search. An empty
// CountryCode disables filtering.
type AlternativesRequest struct {
	Title       string
	OriginalURL string
	Price       *float64
	Currency    string
	CountryCode string
	City        string
	Sort        string
}

// Finder finds other stores selling an item and filters them by whether they
// deliver to the shopper.
type Finder struct {
	store     store.Store
	lookup    availability.StoreLookup
	source    extract.OfferSource
	notifier  notify.Notifier
	converter *currency.Converter
	quota     QuotaReporter
	log       *slog.Logger

	singleItemCap     int
	alternativesCap   int
	lookupConcurrency int
	defaultSort       domain.SortKey

	tracer    trace.Tracer
	evaluated metric.Int64Counter
}

// FinderOption configures the Finder.
type FinderOption func(*Finder)

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) FinderOption {
	return func(f *Finder) {
		f.log = l
	}
}

// WithStoreLookup replaces the store used for profile lookups, typically
// with a cache in front of it.
func WithStoreLookup(l availability.StoreLookup) FinderOption {
	return func(f *Finder) {
		f.lookup = l
	}
}

// WithNotifier sets where unknown store domains are reported.
func WithNotifier(n notify.Notifier) FinderOption {
	return func(f *Finder) {
		f.notifier = n
	}
}

// WithConverter sets the currency converter used for NormalizedPrice.
func WithConverter(c *currency.Converter) FinderOption {
	return func(f *Finder) {
		f.converter = c
	}
}

// WithQuotaReporter reports the offer source's daily usage as a gauge.
func WithQuotaReporter(q QuotaReporter) FinderOption {
	return func(f *Finder) {
		f.quota = q
	}
}

// WithCaps sets the result caps for the two search paths. Values of zero or
// less keep the defaults.
func WithCaps(singleItem, alternatives int) FinderOption {
	return func(f *Finder) {
		if singleItem > 0 {
			f.singleItemCap = singleItem
		}
		if alternatives > 0 {
			f.alternativesCap = alternatives
		}
	}
}

// WithLookupConcurrency bounds concurrent store lookups per request.
func WithLookupConcurrency(n int) FinderOption {
	return func(f *Finder) {
		if n > 0 {
			f.lookupConcurrency = n
		}
	}
}

// WithDefaultSort sets the sort used when a request names none.
func WithDefaultSort(key domain.SortKey) FinderOption {
	return func(f *Finder) {
		f.defaultSort = key
	}
}

// NewFinder creates a Finder. The store serves items, users and, unless
// WithStoreLookup is given, store profiles.
func NewFinder(s store.Store, src extract.OfferSource, opts ...FinderOption) *Finder {
	f := &Finder{
		store:             s,
		lookup:            s,
		source:            src,
		log:               slog.Default(),
		singleItemCap:     availability.DefaultSingleItemCap,
		alternativesCap:   availability.DefaultAlternativesCap,
		lookupConcurrency: 8,
		defaultSort:       domain.SortLowestPrice,
		tracer:            otel.Tracer(instrumentationName),
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.notifier == nil {
		f.notifier = notify.NewNoOpNotifier(f.log)
	}

	counter, err := otel.Meter(instrumentationName).Int64Counter(
		"offer_finder.offers.evaluated",
		metric.WithDescription("Candidate offers evaluated against shipping rules."),
	)
	if err != nil {
		f.log.Warn("creating otel counter", "error", err)
	}
	f.evaluated = counter

	return f
}

// FindOtherStores generates offers for one of the user's items and filters
// them by the user's saved location. Without a location no offers are
// generated; the result carries only the item's own store and a prompt.
func (f *Finder) FindOtherStores(ctx context.Context, userID, itemID string) (*OtherStoresResult, error) {
	ctx, span := f.tracer.Start(ctx, "Finder.FindOtherStores",
		trace.WithAttributes(attribute.String("item.id", itemID)),
	)
	defer span.End()

	item, err := f.store.GetItem(ctx, userID, itemID)
	if err != nil {
		return nil, recordErr(span, fmt.Errorf("loading item %s: %w", itemID, err))
	}

	loc, preferred, err := f.userLocation(ctx, userID)
	if err != nil {
		return nil, recordErr(span, err)
	}

	if loc == nil {
		msg := availability.NoLocationMessage
		res := &OtherStoresResult{
			Stores:            []domain.CandidateOffer{},
			UnavailableStores: []domain.UnavailableOffer{},
			Message:           &msg,
		}
		if o, ok := item.OriginalOffer(); ok {
			res.Stores = append(res.Stores, o)
		}
		span.SetAttributes(attribute.Bool("user.has_location", false))
		return res, nil
	}
	span.SetAttributes(
		attribute.Bool("user.has_location", true),
		attribute.String("user.country", loc.CountryCode),
	)

	offers, err := f.generate(ctx, extract.OfferRequest{
		Title:       item.Title,
		OriginalURL: item.URL,
		Price:       item.Price,
		Currency:    item.Currency,
		CountryCode: loc.CountryCode,
		City:        loc.City,
		Max:         f.singleItemCap,
	}, f.singleItemCap)
	if err != nil {
		return nil, recordErr(span, err)
	}

	f.normalizePrices(offers, firstNonEmpty(preferred, item.Currency))

	profiles, err := f.resolve(ctx, offers)
	if err != nil {
		return nil, recordErr(span, err)
	}

	res := availability.FilterAndRank(offers, loc, profiles, domain.SortLowestPrice)
	f.recordEvaluation(ctx, opFindOtherStores, len(offers), res.Unavailable)
	f.reportUnknown(ctx, offers, profiles, item.Title, loc.CountryCode)

	return &OtherStoresResult{
		Stores:            res.Available,
		UnavailableStores: res.Unavailable,
		UserLocation:      loc,
		CityRequired:      res.CityRequired,
		HasLocation:       true,
	}, nil
}

// FindAlternatives generates offers for a free-text product and annotates
// each with its availability for the inline location. Available offers come
// first in the requested sort order.
func (f *Finder) FindAlternatives(ctx context.Context, req AlternativesRequest) ([]domain.AnnotatedOffer, error) {
	ctx, span := f.tracer.Start(ctx, "Finder.FindAlternatives")
	defer span.End()

	if strings.TrimSpace(req.Title) == "" {
		return nil, recordErr(span, ErrEmptyTitle)
	}

	var loc *domain.Location
	if country := domain.NormalizeCountry(req.CountryCode); country != "" {
		loc = &domain.Location{CountryCode: country, City: strings.TrimSpace(req.City)}
		span.SetAttributes(attribute.String("user.country", country))
	}

	sortKey := f.defaultSort
	if strings.TrimSpace(req.Sort) != "" {
		sortKey = domain.ParseSortKey(req.Sort)
	}

	offerReq := extract.OfferRequest{
		Title:       req.Title,
		OriginalURL: req.OriginalURL,
		Price:       req.Price,
		Currency:    req.Currency,
		Max:         f.alternativesCap,
	}
	if loc != nil {
		offerReq.CountryCode = loc.CountryCode
		offerReq.City = loc.City
	}

	offers, err := f.generate(ctx, offerReq, f.alternativesCap)
	if err != nil {
		return nil, recordErr(span, err)
	}

	f.normalizePrices(offers, req.Currency)

	profiles := availability.Profiles{}
	if loc != nil {
		profiles, err = f.resolve(ctx, offers)
		if err != nil {
			return nil, recordErr(span, err)
		}
	}

	annotated := availability.Annotate(offers, loc, profiles, sortKey)

	var unavailable []domain.UnavailableOffer
	for _, a := range annotated {
		if a.Availability == domain.AvailabilityUnavailable {
			unavailable = append(unavailable, domain.UnavailableOffer{ReasonCode: a.ReasonCode})
		}
	}
	f.recordEvaluation(ctx, opFindAlternatives, len(offers), unavailable)
	if loc != nil {
		f.reportUnknown(ctx, offers, profiles, req.Title, loc.CountryCode)
	}

	return annotated, nil
}

// userLocation returns the saved location and preferred currency. A missing
// user or a location without a country yields a nil location.
func (f *Finder) userLocation(ctx context.Context, userID string) (*domain.Location, string, error) {
	u, err := f.store.GetUser(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, "", nil
	}
	if err != nil {
		return nil, "", fmt.Errorf("loading user location: %w", err)
	}
	if u.Location == nil || domain.NormalizeCountry(u.Location.CountryCode) == "" {
		return nil, u.PreferredCurrency, nil
	}
	loc := &domain.Location{
		CountryCode: domain.NormalizeCountry(u.Location.CountryCode),
		City:        strings.TrimSpace(u.Location.City),
	}
	return loc, u.PreferredCurrency, nil
}

// generate asks the offer source for candidates and keeps up to maxCount
// well-formed ones.
func (f *Finder) generate(ctx context.Context, req extract.OfferRequest, maxCount int) ([]domain.CandidateOffer, error) {
	ctx, span := f.tracer.Start(ctx, "OfferSource.GenerateCandidates")
	defer span.End()

	start := time.Now()
	raw, err := f.source.GenerateCandidates(ctx, req)
	metrics.OfferGenerationDuration.Observe(time.Since(start).Seconds())
	if f.quota != nil {
		metrics.LLMDailyUsage.Set(float64(f.quota.DailyCount()))
	}
	if err != nil {
		if errors.Is(err, extract.ErrDailyLimitReached) {
			metrics.LLMDailyLimitHits.Inc()
		}
		metrics.OfferGenerationFailuresTotal.Inc()
		return nil, recordErr(span, fmt.Errorf("generating offers: %w", err))
	}

	valid, dropped := availability.CollectCounted(raw, maxCount)
	if dropped > 0 {
		metrics.OffersDroppedTotal.Add(float64(dropped))
		f.log.Debug("dropped malformed offers", "dropped", dropped, "received", len(raw))
	}

	span.SetAttributes(
		attribute.Int("offers.received", len(raw)),
		attribute.Int("offers.valid", len(valid)),
	)
	return valid, nil
}

func (f *Finder) resolve(ctx context.Context, offers []domain.CandidateOffer) (availability.Profiles, error) {
	ctx, span := f.tracer.Start(ctx, "availability.ResolveProfiles")
	defer span.End()

	start := time.Now()
	profiles, err := availability.ResolveProfiles(ctx, f.lookup, offers,
		availability.WithConcurrency(f.lookupConcurrency),
	)
	metrics.ProfileResolveDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		return nil, recordErr(span, err)
	}

	span.SetAttributes(attribute.Int("stores.known", len(profiles)))
	return profiles, nil
}

// normalizePrices sets NormalizedPrice in the target currency, or in the
// converter's base currency when target is empty. Offers in currencies the
// converter does not know keep a nil NormalizedPrice.
func (f *Finder) normalizePrices(offers []domain.CandidateOffer, target string) {
	if f.converter == nil {
		return
	}
	if target == "" || !f.converter.Supports(target) {
		target = f.converter.Base()
	}
	for i := range offers {
		v, err := f.converter.Convert(offers[i].Price, offers[i].Currency, target)
		if err != nil {
			continue
		}
		offers[i].NormalizedPrice = &v
	}
}

func (f *Finder) recordEvaluation(
	ctx context.Context,
	operation string,
	evaluated int,
	unavailable []domain.UnavailableOffer,
) {
	metrics.OffersEvaluatedTotal.WithLabelValues(operation).Add(float64(evaluated))
	for _, u := range unavailable {
		metrics.OffersUnavailableTotal.WithLabelValues(string(u.ReasonCode)).Inc()
	}
	if f.evaluated != nil {
		f.evaluated.Add(ctx, int64(evaluated), metric.WithAttributes(attribute.String("operation", operation)))
	}
}

// reportUnknown notifies about offered domains with no store record. Send
// failures are logged and never fail the request.
func (f *Finder) reportUnknown(
	ctx context.Context,
	offers []domain.CandidateOffer,
	profiles availability.Profiles,
	title, country string,
) {
	unknown := availability.UnknownDomains(offers, profiles)
	if len(unknown) == 0 {
		return
	}
	err := f.notifier.NotifyUnknownStores(ctx, notify.UnknownStores{
		Domains:     unknown,
		ItemTitle:   title,
		CountryCode: country,
	})
	if err != nil {
		f.log.Warn("reporting unknown stores", "domains", unknown, "error", err)
	}
}

func recordErr(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
