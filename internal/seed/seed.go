// Package seed populates a realtime database with sample volunteers,
// organizations and posts.
package seed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/tounesna/seeder/internal/domain"
	"github.com/tounesna/seeder/internal/pushid"
	"github.com/tounesna/seeder/internal/rtdb"
)

// DefaultDelay separates consecutive id generations.
const DefaultDelay = 100 * time.Millisecond

// ErrNoOrganizations is recorded against every post when the organizations
// phase created nothing for them to reference.
var ErrNoOrganizations = errors.New("no organization was created to publish the post")

// Putter writes a record at collection/id, replacing any previous value.
// *rtdb.Client satisfies it.
type Putter interface {
	Put(ctx context.Context, collection, id string, v any) error
}

// Failure is a record the store refused.
type Failure struct {
	Kind  domain.Kind
	Label string
	Err   error
}

// Result is the outcome of a run: the ids created per kind and every
// rejected record.
type Result struct {
	Volunteers    []string
	Organizations []string
	Posts         []string
	Failures      []Failure
}

// Created returns the number of records written.
func (r *Result) Created() int {
	return len(r.Volunteers) + len(r.Organizations) + len(r.Posts)
}

// Failed returns the number of records that were not written.
func (r *Result) Failed() int {
	return len(r.Failures)
}

// Seeder writes the sample data set.
type Seeder struct {
	client Putter
	rng    *rand.Rand
	now    func() time.Time
	delay  time.Duration
	out    io.Writer
	ids    *pushid.Generator
}

// Option configures a Seeder.
type Option func(*Seeder)

// WithRand sets the random source used for ids and generated fields.
func WithRand(rng *rand.Rand) Option {
	return func(s *Seeder) { s.rng = rng }
}

// WithClock sets the clock used for ids and timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Seeder) { s.now = now }
}

// WithDelay sets the pause after each id generation.
func WithDelay(d time.Duration) Option {
	return func(s *Seeder) { s.delay = d }
}

// WithOutput sets where progress lines are printed.
func WithOutput(w io.Writer) Option {
	return func(s *Seeder) { s.out = w }
}

// New creates a Seeder writing through client.
func New(client Putter, opts ...Option) *Seeder {
	s := &Seeder{
		client: client,
		now:    time.Now,
		delay:  DefaultDelay,
		out:    os.Stdout,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano())) //nolint:gosec // sample data
	}
	s.ids = &pushid.Generator{Now: s.now, Rand: s.rng}
	return s
}

// Run creates the volunteers, then the organizations, then the posts. A
// record the store rejects is reported and skipped. Any other error stops
// the run and is returned with the partial result.
func (s *Seeder) Run(ctx context.Context) (*Result, error) {
	res := &Result{}

	s.printf("🚀 Starting to add sample data to Firebase...\n\n")

	s.printf("📋 Adding Volunteers...\n")
	if err := s.volunteers(ctx, res); err != nil {
		return res, err
	}
	s.printf("\n✅ Added %d volunteers\n\n", len(res.Volunteers))

	s.printf("🏢 Adding Organizations...\n")
	if err := s.organizations(ctx, res); err != nil {
		return res, err
	}
	s.printf("\n✅ Added %d organizations\n\n", len(res.Organizations))

	s.printf("📝 Adding Posts...\n")
	if err := s.posts(ctx, res); err != nil {
		return res, err
	}
	// The posts total is the size of the sample set, whatever was written.
	// res.Posts holds the real count.
	s.printf("\n✅ Added %d posts\n\n", len(postRows))

	s.printf("🎉 Sample data added successfully!\n")
	s.printf("\n📧 Login credentials for testing:\n")
	s.printf("Volunteers: %s, %s, %s (password: %s)\n",
		volunteerRows[0].Email, volunteerRows[1].Email, volunteerRows[2].Email, Password)
	s.printf("Organizations: %s, %s (password: %s)\n",
		organizationRows[0].Email, organizationRows[1].Email, Password)

	if n := res.Failed(); n > 0 {
		slog.Warn("seeding finished with rejected records", "created", res.Created(), "failed", n)
	}
	return res, nil
}

func (s *Seeder) volunteers(ctx context.Context, res *Result) error {
	for _, row := range volunteerRows {
		id, err := s.nextID(ctx)
		if err != nil {
			return err
		}
		v := BuildVolunteer(row, id, s.rng, s.now())
		ok, err := s.upsert(ctx, res, domain.KindVolunteer, v.FullName(), id, v)
		if err != nil {
			return err
		}
		if ok {
			res.Volunteers = append(res.Volunteers, id)
		}
	}
	return nil
}

func (s *Seeder) organizations(ctx context.Context, res *Result) error {
	for _, row := range organizationRows {
		id, err := s.nextID(ctx)
		if err != nil {
			return err
		}
		o := BuildOrganization(row, id, s.rng, s.now())
		ok, err := s.upsert(ctx, res, domain.KindOrganization, o.Name, id, o)
		if err != nil {
			return err
		}
		if ok {
			res.Organizations = append(res.Organizations, id)
		}
	}
	return nil
}

func (s *Seeder) posts(ctx context.Context, res *Result) error {
	if len(res.Organizations) == 0 {
		s.printf("⚠️ No organizations available, skipping %d posts\n", len(postRows))
		for _, row := range postRows {
			res.Failures = append(res.Failures, Failure{Kind: domain.KindPost, Label: row.Title, Err: ErrNoOrganizations})
		}
		return nil
	}

	for _, row := range postRows {
		id, err := s.nextID(ctx)
		if err != nil {
			return err
		}
		orgID := pick(s.rng, res.Organizations)
		p := BuildPost(row, id, orgID, s.rng, s.now())
		ok, err := s.upsert(ctx, res, domain.KindPost, p.Title, id, p)
		if err != nil {
			return err
		}
		if ok {
			res.Posts = append(res.Posts, id)
		}
	}
	return nil
}

// nextID generates an id and then waits out the delay so the next one lands
// in a later millisecond.
func (s *Seeder) nextID(ctx context.Context) (string, error) {
	id := s.ids.Next()
	if err := sleep(ctx, s.delay); err != nil {
		return "", err
	}
	return id, nil
}

// upsert writes one record. It reports false without error when the store
// rejected the write.
func (s *Seeder) upsert(ctx context.Context, res *Result, kind domain.Kind, label, id string, record any) (bool, error) {
	err := s.client.Put(ctx, kind.Collection, id, record)

	var rejected *rtdb.RejectedError
	switch {
	case err == nil:
		s.printf("✅ Created %s: %s (ID: %s)\n", kind.Singular, label, id)
		return true, nil
	case errors.As(err, &rejected):
		s.printf("❌ Failed to create %s: %s (%d: %s)\n", kind.Singular, label, rejected.StatusCode, rejected.Body)
		res.Failures = append(res.Failures, Failure{Kind: kind, Label: label, Err: err})
		return false, nil
	}
	return false, fmt.Errorf("create %s %s: %w", kind.Singular, label, err)
}

func (s *Seeder) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.out, format, args...)
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
