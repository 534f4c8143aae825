// Package verify checks that a realtime database is reachable, then writes
// two fixed test accounts and reads the collections back.
package verify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"sort"
	"strings"

	"github.com/tounesna/seeder/internal/domain"
	"github.com/tounesna/seeder/internal/rtdb"
)

// sampleSize is how many records of a collection are listed.
const sampleSize = 3

var rule = strings.Repeat("=", 50)

// Client reads whole collections and writes single records. *rtdb.Client
// satisfies it.
type Client interface {
	GetAll(ctx context.Context, collection string) (map[string]json.RawMessage, error)
	Put(ctx context.Context, collection, id string, v any) error
}

// Counts is the number of accounts seen in one read pass. A collection whose
// read was rejected counts -1.
type Counts struct {
	Volunteers    int
	Organizations int
}

// Report is the outcome of a verification run.
type Report struct {
	Before Counts
	After  Counts
	// Added holds the ids of the test accounts that were written.
	Added []string
	// Failed counts rejected reads and writes.
	Failed int
}

// Verifier runs the checks against one database.
type Verifier struct {
	client Client
	out    io.Writer
}

// New creates a Verifier printing to out, or stdout when out is nil.
func New(client Client, out io.Writer) *Verifier {
	if out == nil {
		out = os.Stdout
	}
	return &Verifier{client: client, out: out}
}

// Run reads both collections, adds the test accounts, and reads again.
// Rejected requests are reported and counted; transport errors stop the run.
func (v *Verifier) Run(ctx context.Context) (*Report, error) {
	rep := &Report{}

	v.banner("Firebase Connection Test")
	before, err := v.readAll(ctx, rep)
	if err != nil {
		return rep, err
	}
	rep.Before = before

	v.printf("\n")
	v.banner("Adding Test Accounts")
	if err := v.AddTestAccounts(ctx, rep); err != nil {
		return rep, err
	}

	v.printf("\n")
	v.banner("Verifying...")
	after, err := v.readAll(ctx, rep)
	if err != nil {
		return rep, err
	}
	rep.After = after

	v.printf("\n✅ Done! Try logging in with:\n")
	v.printf("   Volunteer: %s / %s\n", TestVolunteer().Email, TestVolunteer().Password)
	v.printf("   Organization: %s / %s\n", TestOrganization().Email, TestOrganization().Password)
	return rep, nil
}

func (v *Verifier) readAll(ctx context.Context, rep *Report) (Counts, error) {
	var c Counts
	var err error

	v.printf("Testing Firebase read access...\n")
	if c.Volunteers, err = v.ReadCollection(ctx, domain.KindVolunteer); err != nil {
		return c, err
	}
	if c.Volunteers < 0 {
		rep.Failed++
	}
	v.printf("\n")
	if c.Organizations, err = v.ReadCollection(ctx, domain.KindOrganization); err != nil {
		return c, err
	}
	if c.Organizations < 0 {
		rep.Failed++
	}
	return c, nil
}

// ReadCollection prints the read status, the record count and up to three
// sample records of kind. It returns the count, or -1 when the store
// rejected the read.
func (v *Verifier) ReadCollection(ctx context.Context, kind domain.Kind) (int, error) {
	title := strings.ToUpper(kind.Plural[:1]) + kind.Plural[1:]

	records, err := v.client.GetAll(ctx, kind.Collection)
	var rejected *rtdb.RejectedError
	switch {
	case errors.As(err, &rejected):
		v.printf("%s read status: %d\n", title, rejected.StatusCode)
		v.printf("Error: %s\n", rejected.Body)
		return -1, nil
	case err != nil:
		return 0, fmt.Errorf("read %s: %w", kind.Plural, err)
	}

	v.printf("%s read status: %d\n", title, http.StatusOK)
	if len(records) == 0 {
		v.printf("No %s found\n", kind.Plural)
		return 0, nil
	}

	v.printf("Found %d %s\n", len(records), kind.Plural)
	keys := make([]string, 0, len(records))
	for k := range records {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	if len(keys) > sampleSize {
		keys = keys[:sampleSize]
	}
	for _, k := range keys {
		var fields map[string]any
		// Records that are not objects are listed with placeholders.
		_ = json.Unmarshal(records[k], &fields)
		v.printf("  - %s (%s)\n", field(fields, "email", "NO EMAIL"), field(fields, "name", "NO NAME"))
	}
	return len(records), nil
}

// AddTestAccounts writes the test volunteer and organization. Rejections are
// counted in rep.
func (v *Verifier) AddTestAccounts(ctx context.Context, rep *Report) error {
	vol := TestVolunteer()
	v.printf("\nAdding test volunteer account...\n")
	ok, err := v.put(ctx, domain.KindVolunteer, vol.ID, vol)
	if err != nil {
		return err
	}
	if ok {
		rep.Added = append(rep.Added, vol.ID)
		v.printf("✅ Test volunteer added: %s / %s\n", vol.Email, vol.Password)
	} else {
		rep.Failed++
	}

	org := TestOrganization()
	v.printf("\nAdding test organization account...\n")
	ok, err = v.put(ctx, domain.KindOrganization, org.ID, org)
	if err != nil {
		return err
	}
	if ok {
		rep.Added = append(rep.Added, org.ID)
		v.printf("✅ Test organization added: %s / %s\n", org.Email, org.Password)
	} else {
		rep.Failed++
	}
	return nil
}

func (v *Verifier) put(ctx context.Context, kind domain.Kind, id string, record any) (bool, error) {
	err := v.client.Put(ctx, kind.Collection, id, record)
	var rejected *rtdb.RejectedError
	switch {
	case err == nil:
		return true, nil
	case errors.As(err, &rejected):
		v.printf("❌ Failed: %d - %s\n", rejected.StatusCode, rejected.Body)
		return false, nil
	}
	return false, fmt.Errorf("add test %s: %w", kind.Singular, err)
}

func (v *Verifier) banner(title string) {
	v.printf("%s\n%s\n%s\n", rule, title, rule)
}

func (v *Verifier) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(v.out, format, args...)
}

func field(fields map[string]any, name, missing string) string {
	val, ok := fields[name]
	if !ok || val == nil {
		return missing
	}
	return fmt.Sprint(val)
}
