// Package cli is the likelemba terminal client: a small REPL that signs the member in with
// a one-time code and then shows and manages their tontine groups.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	tontinev1 "likelemba/api/generated/tontine/v1"
	"likelemba/internal/authflow"
	"likelemba/internal/client"
)

// Backend is what the CLI needs from the server. *client.Client implements it.
type Backend interface {
	authflow.CodeSender
	authflow.CodeVerifier
	authflow.SessionStore
	ListGroups(ctx context.Context) ([]*tontinev1.Group, error)
	GetGroup(ctx context.Context, groupID string) (*tontinev1.Group, error)
	ListPayments(ctx context.Context, groupID string) ([]*tontinev1.Payment, error)
	Dashboard(ctx context.Context) (*tontinev1.GetDashboardResponse, error)
	CreateGroup(ctx context.Context, g client.NewGroup) (*tontinev1.Group, error)
	AddMember(ctx context.Context, groupID, phone, name string) (*tontinev1.AddMemberResponse, error)
	ListMembers(ctx context.Context, groupID string) ([]*tontinev1.Member, error)
	RecordPayment(ctx context.Context, groupID string, round int, method string) (*tontinev1.Payment, error)
	RoundStatus(ctx context.Context, groupID string, round int) (*tontinev1.GetRoundStatusResponse, error)
	DevOTP(ctx context.Context, phone string) (string, error)
}

// App holds one terminal session.
type App struct {
	backend Backend
	flow    *authflow.Flow
	in      *bufio.Reader
	out     io.Writer
	secret  SecretReader
	devOTP  bool
}

// Option configures an App.
type Option func(*App)

// WithSecretReader reads the code without echo.
func WithSecretReader(r SecretReader) Option {
	return func(a *App) { a.secret = r }
}

// WithDevOTP prints the code fetched from the server's dev store after it is sent.
func WithDevOTP(enabled bool) Option {
	return func(a *App) { a.devOTP = enabled }
}

// WithFlowOptions passes options to the underlying login flow.
func WithFlowOptions(opts ...authflow.Option) Option {
	return func(a *App) {
		a.flow = authflow.New(a.backend, a.backend, append([]authflow.Option{authflow.WithSessionStore(a.backend)}, opts...)...)
	}
}

// NewApp returns an App reading commands from in and writing to out.
func NewApp(backend Backend, in io.Reader, out io.Writer, opts ...Option) *App {
	a := &App{
		backend: backend,
		in:      bufio.NewReader(in),
		out:     out,
	}
	a.flow = authflow.New(backend, backend, authflow.WithSessionStore(backend))
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Run restores a cached session, then reads commands until exit or end of input.
func (a *App) Run(ctx context.Context) error {
	if u, err := a.flow.Restore(ctx); err != nil {
		a.printf("Could not reach the server: %v\n", err)
	} else if u != nil {
		a.printf("Welcome back, %s.\n", u.Name)
	}
	a.printf("Type 'help' for commands.\n")
	for {
		line, err := readLine(a.in, a.out, a.prompt())
		if errors.Is(err, io.EOF) {
			a.printf("\n")
			return nil
		}
		if err != nil {
			return err
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if done := a.dispatch(ctx, fields[0], fields[1:]); done {
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
}

func (a *App) prompt() string {
	if s := a.flow.State(); s.User != nil {
		return fmt.Sprintf("likelemba (%s)> ", s.User.Name)
	}
	return "likelemba> "
}

// dispatch runs one command and reports whether the loop should stop.
func (a *App) dispatch(ctx context.Context, cmd string, args []string) bool {
	var err error
	switch cmd {
	case "help", "?":
		a.help()
	case "login":
		err = a.login(ctx)
	case "logout":
		err = a.logout(ctx)
	case "whoami":
		a.whoami()
	case "groups":
		err = a.groups(ctx)
	case "group":
		if len(args) != 1 {
			a.printf("Usage: group <id>\n")
			return false
		}
		err = a.group(ctx, args[0])
	case "payments":
		groupID := ""
		if len(args) > 0 {
			groupID = args[0]
		}
		err = a.payments(ctx, groupID)
	case "dashboard":
		err = a.dashboard(ctx)
	case "create-group":
		err = a.createGroup(ctx)
	case "members":
		if len(args) != 1 {
			a.printf("Usage: members <group id>\n")
			return false
		}
		err = a.members(ctx, args[0])
	case "add-member":
		if len(args) < 2 {
			a.printf("Usage: add-member <group id> <phone>\n")
			return false
		}
		err = a.addMember(ctx, args[0], strings.Join(args[1:], ""))
	case "pay":
		if len(args) < 2 || len(args) > 3 {
			a.printf("Usage: pay <group id> <airtel|mpesa|orange|cash> [round]\n")
			return false
		}
		err = a.pay(ctx, args[0], args[1], args[2:])
	case "round":
		if len(args) < 1 || len(args) > 2 {
			a.printf("Usage: round <group id> [round]\n")
			return false
		}
		err = a.round(ctx, args[0], args[1:])
	case "exit", "quit":
		a.printf("Bye!\n")
		return true
	default:
		a.printf("Unknown command: %s\n", cmd)
	}
	switch {
	case errors.Is(err, client.ErrNotSignedIn):
		_ = a.flow.Logout(ctx)
		a.printf("Your session has ended, sign in again with 'login'.\n")
	case err != nil:
		a.printf("Error: %v\n", err)
	}
	return false
}

func (a *App) help() {
	if a.signedIn() {
		a.printf("Commands: dashboard, groups, group <id>, payments [group id], whoami, logout, help, exit\n")
		a.printf("Groups:   create-group, members <id>, add-member <id> <phone>, pay <id> <method> [round], round <id> [round]\n")
		return
	}
	a.printf("Commands: login, help, exit\n")
}

func (a *App) signedIn() bool {
	return a.flow.State().Step == authflow.StepAuthenticated
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) whoami() {
	s := a.flow.State()
	if s.User == nil {
		a.printf("Not signed in.\n")
		return
	}
	a.printf("%s (%s), member since %s\n", s.User.Name, s.User.Phone, formatDate(s.User.CreatedAt))
}

func (a *App) logout(ctx context.Context) error {
	if !a.signedIn() {
		a.printf("Not signed in.\n")
		return nil
	}
	err := a.flow.Logout(ctx)
	a.printf("Signed out.\n")
	return err
}

func (a *App) groups(ctx context.Context) error {
	if !a.requireSignIn() {
		return nil
	}
	groups, err := a.backend.ListGroups(ctx)
	if err != nil {
		return err
	}
	if len(groups) == 0 {
		a.printf("You are not in any group yet.\n")
		return nil
	}
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tCONTRIBUTION\tROUND\tSTATUS\tNEXT PAYOUT")
	for _, g := range groups {
		fmt.Fprintf(tw, "%s\t%s\t%s / %s\t%d/%d\t%s\t%s\n",
			g.GetId(), g.GetName(), formatAmount(g.GetContributionAmount(), g.GetCurrency()), g.GetFrequency(),
			g.GetCurrentRound(), g.GetTotalRounds(), g.GetStatus(), formatTimestamp(g.GetNextPayoutAt()))
	}
	return tw.Flush()
}

func (a *App) group(ctx context.Context, id string) error {
	if !a.requireSignIn() {
		return nil
	}
	g, err := a.backend.GetGroup(ctx, id)
	if err != nil {
		return err
	}
	a.printf("%s\n", g.GetName())
	if g.GetDescription() != "" {
		a.printf("  %s\n", g.GetDescription())
	}
	a.printf("  Contribution: %s %s\n", formatAmount(g.ContributionAmount, g.Currency), g.Frequency)
	a.printf("  Members:      %d\n", g.MemberCount)
	a.printf("  Round:        %d of %d\n", g.CurrentRound, g.TotalRounds)
	a.printf("  Status:       %s\n", g.Status)
	a.printf("  Next payout:  %s\n", formatTimestamp(g.GetNextPayoutAt()))
	return nil
}

func (a *App) payments(ctx context.Context, groupID string) error {
	if !a.requireSignIn() {
		return nil
	}
	payments, err := a.backend.ListPayments(ctx, groupID)
	if err != nil {
		return err
	}
	if len(payments) == 0 {
		a.printf("No payments.\n")
		return nil
	}
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "DUE\tGROUP\tROUND\tAMOUNT\tSTATUS\tPAID\tMETHOD")
	for _, p := range payments {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\t%s\t%s\n",
			formatTimestamp(p.GetDueAt()), p.GetGroupName(), p.GetRound(), formatAmount(p.GetAmount(), p.GetCurrency()),
			p.GetStatus(), formatTimestamp(p.GetPaidAt()), orDash(p.GetMethod()))
	}
	return tw.Flush()
}

func (a *App) dashboard(ctx context.Context) error {
	if !a.requireSignIn() {
		return nil
	}
	d, err := a.backend.Dashboard(ctx)
	if err != nil {
		return err
	}
	a.printf("Active groups:     %d\n", d.ActiveGroups)
	if len(d.TotalContributed) == 0 {
		a.printf("Total contributed: -\n")
	}
	for i, t := range d.TotalContributed {
		label := "Total contributed:"
		if i > 0 {
			label = "                  "
		}
		a.printf("%s %s\n", label, formatAmount(t.Amount, t.Currency))
	}
	a.printf("Pending payments:  %d\n", d.PendingPayments)
	a.printf("Late payments:     %d\n", d.LatePayments)
	if d.NextPayout != nil {
		a.printf("Next payout:       %s on %s\n", d.NextPayout.Name, formatTimestamp(d.NextPayout.GetNextPayoutAt()))
	}
	return nil
}

func (a *App) requireSignIn() bool {
	if a.signedIn() {
		return true
	}
	a.printf("Sign in first with 'login'.\n")
	return false
}
