package ui

import (
	"bufio"
	"errors"
	"io"
	"log/slog"

	"github.com/abhisakh/Branching-Out/internal/filter"
	"github.com/abhisakh/Branching-Out/internal/storage"
	"github.com/abhisakh/Branching-Out/internal/types"
	"github.com/abhisakh/Branching-Out/internal/utils/input"
)

// ErrInputClosed is returned when stdin is exhausted mid-session (for
// example Ctrl+D at a prompt). Distinct from validation errors, which
// only ever cause a re-prompt.
var ErrInputClosed = errors.New("input stream closed")

// Driver runs one interactive filter session. It is a small state
// machine: prompt for a field, prompt for a value with a retry
// self-transition on invalid input, execute the filter once, done.
//
// DEPENDENCY INJECTION:
// ─────────────────────
// The driver depends on the storage.Storage INTERFACE, an io.Reader,
// and a presenter — never on os.Stdin or a concrete backend. Tests
// script a whole session by passing a strings.Reader and a fake store.
type Driver struct {
	store storage.Storage
	p     *Presenter
	in    *bufio.Scanner
	log   *slog.Logger
}

// NewDriver wires a driver. in is typically os.Stdin.
func NewDriver(store storage.Storage, p *Presenter, in io.Reader, log *slog.Logger) *Driver {
	return &Driver{
		store: store,
		p:     p,
		in:    bufio.NewScanner(in),
		log:   log,
	}
}

// Run executes exactly one session: field selection, value prompt with
// retries, one filter pass, result output. It returns nil on every
// normal outcome including "no matches"; an invalid field selection
// prints its message and returns input.ErrInvalidField.
func (d *Driver) Run() error {
	d.p.Banner()

	line, err := d.readLine("What would you like to filter by? (id / name / age / email): ")
	if err != nil {
		return err
	}

	field, err := input.ParseField(line)
	if err != nil {
		// A bad field selection ends the session rather than
		// re-prompting.
		d.p.Error("%s", err.Error())
		return err
	}

	d.log.Debug("filter field selected", slog.String("field", string(field)))

	switch field {
	case input.FieldID:
		return d.runID()
	case input.FieldName:
		return d.runName()
	case input.FieldAge:
		return d.runAge()
	case input.FieldEmail:
		return d.runEmail()
	}

	return nil
}

func (d *Driver) runID() error {
	id, err := promptValue(d, "Enter user ID to search: ", input.ParseID)
	if err != nil {
		return err
	}

	users := d.loadUsers()
	if u, ok := filter.ByID(users, id); ok {
		d.p.PrintUsers("User found by ID:", []types.User{u})
		return nil
	}
	d.p.NoMatches("No user found with ID %d.", id)
	return nil
}

func (d *Driver) runName() error {
	name, err := promptValue(d, "Enter a name to filter users: ", input.ParseName)
	if err != nil {
		return err
	}

	matched := filter.ByName(d.loadUsers(), name)
	if len(matched) == 0 {
		d.p.NoMatches("No users found with that name.")
		return nil
	}
	d.p.PrintUsers("Matching users by name:", matched)
	return nil
}

func (d *Driver) runAge() error {
	age, err := promptValue(d, "Enter an age to filter users: ", input.ParseAge)
	if err != nil {
		return err
	}

	matched := filter.ByAge(d.loadUsers(), age)
	if len(matched) == 0 {
		d.p.NoMatches("No users found with that age.")
		return nil
	}
	d.p.PrintUsers("Matching users by age:", matched)
	return nil
}

func (d *Driver) runEmail() error {
	email, err := promptValue(d, "Enter an email to filter users: ", input.ParseEmail)
	if err != nil {
		return err
	}

	matched := filter.ByEmail(d.loadUsers(), email)
	if len(matched) == 0 {
		d.p.NoMatches("No users found with that email address.")
		return nil
	}
	d.p.PrintUsers("Matching users by email:", matched)
	return nil
}

// loadUsers fetches the dataset fresh for this filter run. Load
// failures are recoverable: the error is logged and shown once, and
// the filter proceeds over an empty dataset, which renders as a normal
// "no matches" outcome.
func (d *Driver) loadUsers() []types.User {
	users, err := d.store.GetUsers()
	if err != nil {
		d.log.Warn("could not load users", slog.String("error", err.Error()))
		d.p.Error("Error: %s", err.Error())
	}
	return users
}

// readLine prints a prompt and returns the next input line.
func (d *Driver) readLine(prompt string) (string, error) {
	d.p.Prompt(prompt)
	if !d.in.Scan() {
		if err := d.in.Err(); err != nil {
			return "", err
		}
		return "", ErrInputClosed
	}
	return d.in.Text(), nil
}

// promptValue is the retry loop shared by all value prompts: ask, parse,
// and on a validation error show the message and ask again. It only
// returns a non-nil error when the input stream itself fails.
//
// A package-level generic function rather than a method — Go methods
// cannot carry their own type parameters.
func promptValue[T any](d *Driver, prompt string, parse func(string) (T, error)) (T, error) {
	for {
		line, err := d.readLine(prompt)
		if err != nil {
			var zero T
			return zero, err
		}

		v, err := parse(line)
		if err == nil {
			return v, nil
		}
		d.p.Error("%s", err.Error())
	}
}
