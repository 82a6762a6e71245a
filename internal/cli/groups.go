package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"likelemba/internal/client"
)

// createGroup asks for the group details one line at a time. An empty name cancels.
func (a *App) createGroup(ctx context.Context) error {
	if !a.requireSignIn() {
		return nil
	}
	name, err := readLine(a.in, a.out, "Group name (empty to cancel): ")
	if err != nil || name == "" {
		return nil
	}
	desc, err := readLine(a.in, a.out, "Description (optional): ")
	if err != nil {
		return nil
	}
	var amount int64
	for {
		line, err := readLine(a.in, a.out, "Contribution per round: ")
		if err != nil || line == "" {
			return nil
		}
		if amount, err = parseAmount(line); err == nil {
			break
		}
		a.printf("%v\n", err)
	}
	currency, err := readLine(a.in, a.out, "Currency [CDF]: ")
	if err != nil {
		return nil
	}
	frequency, err := readLine(a.in, a.out, "Frequency, weekly, biweekly or monthly [monthly]: ")
	if err != nil {
		return nil
	}
	g, err := a.backend.CreateGroup(ctx, client.NewGroup{
		Name:               name,
		Description:        desc,
		ContributionAmount: amount,
		Currency:           currency,
		Frequency:          frequency,
	})
	if err != nil {
		return err
	}
	a.printf("Created %s (%s). Add members with 'add-member %s <phone>'.\n", g.GetName(), g.GetId(), g.GetId())
	return nil
}

func (a *App) members(ctx context.Context, groupID string) error {
	if !a.requireSignIn() {
		return nil
	}
	members, err := a.backend.ListMembers(ctx, groupID)
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tNAME\tPHONE\tRECEIVED\tJOINED")
	for _, m := range members {
		received := "no"
		if m.GetHasReceived() {
			received = "yes"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n",
			m.GetPosition(), m.GetName(), m.GetPhone(), received, formatTimestamp(m.GetJoinedAt()))
	}
	return tw.Flush()
}

func (a *App) addMember(ctx context.Context, groupID, phone string) error {
	if !a.requireSignIn() {
		return nil
	}
	name, err := readLine(a.in, a.out, "Name, if new to likelemba (optional): ")
	if err != nil {
		return nil
	}
	resp, err := a.backend.AddMember(ctx, groupID, phone, name)
	if err != nil {
		return err
	}
	m, g := resp.GetMember(), resp.GetGroup()
	a.printf("%s receives the pot in round %d of %d.\n", m.GetName(), m.GetPosition(), g.GetTotalRounds())
	return nil
}

func (a *App) pay(ctx context.Context, groupID, method string, args []string) error {
	if !a.requireSignIn() {
		return nil
	}
	round, ok := a.roundArg(args)
	if !ok {
		return nil
	}
	p, err := a.backend.RecordPayment(ctx, groupID, round, strings.ToLower(method))
	if err != nil {
		return err
	}
	a.printf("Paid %s for round %d of %s by %s.\n",
		formatAmount(p.GetAmount(), p.GetCurrency()), p.GetRound(), p.GetGroupName(), p.GetMethod())
	return nil
}

func (a *App) round(ctx context.Context, groupID string, args []string) error {
	if !a.requireSignIn() {
		return nil
	}
	round, ok := a.roundArg(args)
	if !ok {
		return nil
	}
	rs, err := a.backend.RoundStatus(ctx, groupID, round)
	if err != nil {
		return err
	}
	a.printf("Round %d\n", rs.GetRound())
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tNAME\tSTATUS\tMETHOD\tPAID")
	for _, e := range rs.GetEntries() {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n",
			e.GetMember().GetPosition(), e.GetMember().GetName(), e.GetStatus(), orDash(e.GetMethod()), formatTimestamp(e.GetPaidAt()))
	}
	return tw.Flush()
}

// roundArg reads the optional round number. No argument means the current round (0).
func (a *App) roundArg(args []string) (int, bool) {
	if len(args) == 0 {
		return 0, true
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 {
		a.printf("Round must be a positive number.\n")
		return 0, false
	}
	return n, true
}
