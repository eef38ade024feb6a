package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	apiclient "github.com/donaldgifford/offer-finder/internal/api/client"
	domain "github.com/donaldgifford/offer-finder/pkg/types"
)

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func printItemTable(w io.Writer, items []domain.Item) error {
	tw := newTabWriter(w)
	tw.writef("ID\tTITLE\tPRICE\tSTORE\tADDED\n")
	for i := range items {
		it := &items[i]
		tw.writef("%s\t%s\t%s\t%s\t%s\n",
			it.ID,
			truncate(it.Title, 40),
			formatItemPrice(it),
			firstNonEmpty(it.StoreName, it.Domain, "-"),
			it.CreatedAt.Format("2006-01-02"),
		)
	}
	return tw.finish()
}

func printItemDetail(w io.Writer, it *domain.Item) error {
	tw := newTabWriter(w)
	tw.writef("ID:\t%s\n", it.ID)
	tw.writef("Title:\t%s\n", it.Title)
	tw.writef("Price:\t%s\n", formatItemPrice(it))
	tw.writef("Store:\t%s\n", firstNonEmpty(it.StoreName, "-"))
	tw.writef("Domain:\t%s\n", firstNonEmpty(it.Domain, "-"))
	tw.writef("URL:\t%s\n", firstNonEmpty(it.URL, "-"))
	tw.writef("Added:\t%s\n", it.CreatedAt.Format("2006-01-02 15:04:05"))
	return tw.finish()
}

func printOtherStores(w io.Writer, res *apiclient.OtherStoresResponse) error {
	if res.Message != nil {
		if _, err := fmt.Fprintln(w, *res.Message); err != nil {
			return err
		}
	}
	if len(res.Stores) == 0 && len(res.UnavailableStores) == 0 {
		_, err := fmt.Fprintln(w, "No other stores found.")
		return err
	}

	tw := newTabWriter(w)
	if len(res.Stores) > 0 {
		tw.writef("STORE\tDOMAIN\tPRICE\tDELIVERY\tURL\n")
		for i := range res.Stores {
			o := &res.Stores[i]
			tw.writef("%s\t%s\t%s\t%s\t%s\n",
				o.StoreName,
				o.Domain,
				formatOfferPrice(o),
				firstNonEmpty(o.DeliveryTime, "-"),
				truncate(o.URL, 50),
			)
		}
	}
	if len(res.UnavailableStores) > 0 {
		tw.writef("\nUNAVAILABLE\tDOMAIN\tREASON\n")
		for i := range res.UnavailableStores {
			u := &res.UnavailableStores[i]
			tw.writef("%s\t%s\t%s\n", u.StoreName, u.Domain, u.ReasonMessage)
		}
	}
	return tw.finish()
}

func printAlternatives(w io.Writer, offers []domain.AnnotatedOffer) error {
	tw := newTabWriter(w)
	tw.writef("STORE\tDOMAIN\tPRICE\tAVAILABILITY\tREASON\n")
	for i := range offers {
		o := &offers[i]
		tw.writef("%s\t%s\t%s\t%s\t%s\n",
			o.StoreName,
			o.Domain,
			formatOfferPrice(&o.CandidateOffer),
			o.Availability,
			firstNonEmpty(o.Reason, "-"),
		)
	}
	return tw.finish()
}

func printLocation(w io.Writer, loc *apiclient.LocationResponse) error {
	tw := newTabWriter(w)
	if !loc.HasLocation || loc.Location == nil {
		tw.writef("Location:\tnot set\n")
	} else {
		tw.writef("Country:\t%s\n", loc.Location.CountryCode)
		tw.writef("City:\t%s\n", firstNonEmpty(loc.Location.City, "-"))
	}
	tw.writef("Currency:\t%s\n", firstNonEmpty(loc.PreferredCurrency, "-"))
	return tw.finish()
}

func printStoreTable(w io.Writer, profiles []domain.StoreProfile) error {
	tw := newTabWriter(w)
	tw.writef("DOMAIN\tNAME\tCOUNTRIES\tREQUIRES CITY\tRULES\n")
	for i := range profiles {
		s := &profiles[i].Store
		tw.writef("%s\t%s\t%s\t%v\t%d\n",
			s.Domain,
			s.Name,
			truncate(strings.Join(s.CountriesSupported, ","), 30),
			s.RequiresCity,
			len(profiles[i].Rules),
		)
	}
	return tw.finish()
}

func printStoreDetail(w io.Writer, p *domain.StoreProfile) error {
	tw := newTabWriter(w)
	tw.writef("Domain:\t%s\n", p.Store.Domain)
	tw.writef("Name:\t%s\n", p.Store.Name)
	tw.writef("Countries:\t%s\n", strings.Join(p.Store.CountriesSupported, ", "))
	tw.writef("Requires City:\t%v\n", p.Store.RequiresCity)
	if len(p.Rules) > 0 {
		tw.writef("\nCOUNTRY\tSHIPS\tCITIES\tWHITELIST\tBLACKLIST\n")
		for i := range p.Rules {
			r := &p.Rules[i]
			tw.writef("%s\t%v\t%v\t%s\t%s\n",
				r.CountryCode,
				r.ShipsToCountry,
				r.ShipsToCity,
				firstNonEmpty(strings.Join(r.CityWhitelist, ","), "-"),
				firstNonEmpty(strings.Join(r.CityBlacklist, ","), "-"),
			)
		}
	}
	return tw.finish()
}

func outputJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func formatItemPrice(it *domain.Item) string {
	if it.Price == nil {
		return "-"
	}
	return fmt.Sprintf("%.2f %s", *it.Price, it.Currency)
}

func formatOfferPrice(o *domain.CandidateOffer) string {
	return fmt.Sprintf("%.2f %s", o.Price, o.Currency)
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
