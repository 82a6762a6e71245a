// Package engine decides with OPA Rego whether a phone may be sent another one-time code.
package engine

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/open-policy-agent/opa/v1/ast"
	"github.com/open-policy-agent/opa/v1/rego"

	"likelemba/internal/phone"
	"likelemba/internal/policy/repository"
)

const policyQuery = "data.likelemba.otp"

// Deny reasons produced by the built-in policy.
const (
	ReasonCountryNotAllowed = "country_not_allowed"
	ReasonRateLimited       = "rate_limited"
)

// Built-in send policy: the phone must carry the allowed prefix and have fewer
// than send_limit codes issued inside the current window.
const defaultRegoPolicy = `package likelemba.otp

default allow := false

default reason := ""

country_allowed if {
	startswith(input.phone, input.allowed_prefix)
}

under_limit if {
	input.recent_sends < input.send_limit
}

allow if {
	country_allowed
	under_limit
}

reason := "country_not_allowed" if {
	not country_allowed
}

reason := "rate_limited" if {
	country_allowed
	not under_limit
}
`

// SendInput is what the send policy sees about a pending request.
type SendInput struct {
	Phone         string
	RecentSends   int
	SendLimit     int
	Window        time.Duration
	AllowedPrefix string
}

// SendDecision is the policy outcome. Reason is empty when Allow is true.
type SendDecision struct {
	Allow  bool
	Reason string
}

// Evaluator evaluates the OTP send policy.
type Evaluator interface {
	EvaluateSend(ctx context.Context, in SendInput) (SendDecision, error)
}

// OPAEvaluator evaluates the send policy using OPA Rego. Enabled policies from the
// repository replace the built-in one.
type OPAEvaluator struct {
	policyRepo repository.Repository
}

// NewOPAEvaluator returns an OPA-based send policy evaluator. policyRepo may be nil.
func NewOPAEvaluator(policyRepo repository.Repository) *OPAEvaluator {
	return &OPAEvaluator{policyRepo: policyRepo}
}

// HealthCheck verifies that the in-process OPA engine can compile and evaluate the
// built-in policy. Does not touch the repository.
func (e *OPAEvaluator) HealthCheck(ctx context.Context) error {
	compiler, err := ast.CompileModules(map[string]string{"policy_0.rego": defaultRegoPolicy})
	if err != nil {
		return fmt.Errorf("compile default policy: %w", err)
	}
	if _, err := evaluate(ctx, compiler, buildInput(SendInput{
		Phone:         "+243000000000",
		SendLimit:     1,
		AllowedPrefix: "+243",
	})); err != nil {
		return fmt.Errorf("eval default policy: %w", err)
	}
	return nil
}

// EvaluateSend evaluates the send policy for in. When the policy cannot be compiled or
// evaluated, the same rules as the built-in policy are applied in Go and no error is returned.
func (e *OPAEvaluator) EvaluateSend(ctx context.Context, in SendInput) (SendDecision, error) {
	in.Phone = phone.Canonical(in.Phone)

	policies := []string{defaultRegoPolicy}
	if e.policyRepo != nil {
		enabled, err := e.policyRepo.ListEnabled(ctx)
		if err != nil {
			log.Printf("policy: failed to load send policies: %v", err)
		} else if len(enabled) > 0 {
			policies = policies[:0]
			for _, p := range enabled {
				if p.Rules != "" {
					policies = append(policies, p.Rules)
				}
			}
			if len(policies) == 0 {
				policies = []string{defaultRegoPolicy}
			}
		}
	}

	modules := make(map[string]string, len(policies))
	for i, p := range policies {
		modules[fmt.Sprintf("policy_%d.rego", i)] = p
	}
	compiler, err := ast.CompileModules(modules)
	if err != nil {
		log.Printf("policy: compile failed: %v, using defaults", err)
		return fallbackDecision(in), nil
	}
	d, err := evaluate(ctx, compiler, buildInput(in))
	if err != nil {
		log.Printf("policy: evaluation failed: %v, using defaults", err)
		return fallbackDecision(in), nil
	}
	return d, nil
}

func buildInput(in SendInput) map[string]interface{} {
	return map[string]interface{}{
		"phone":          in.Phone,
		"recent_sends":   in.RecentSends,
		"send_limit":     in.SendLimit,
		"window_seconds": int64(in.Window / time.Second),
		"allowed_prefix": in.AllowedPrefix,
	}
}

func evaluate(ctx context.Context, compiler *ast.Compiler, input map[string]interface{}) (SendDecision, error) {
	q := rego.New(
		rego.Query(policyQuery),
		rego.Compiler(compiler),
		rego.Input(input),
	)
	rs, err := q.Eval(ctx)
	if err != nil {
		return SendDecision{}, err
	}
	if len(rs) == 0 || len(rs[0].Expressions) == 0 {
		return SendDecision{}, fmt.Errorf("policy query returned no result")
	}
	doc, ok := rs[0].Expressions[0].Value.(map[string]interface{})
	if !ok {
		return SendDecision{}, fmt.Errorf("policy result is %T, want object", rs[0].Expressions[0].Value)
	}
	var out SendDecision
	if v, ok := doc["allow"].(bool); ok {
		out.Allow = v
	}
	if v, ok := doc["reason"].(string); ok && !out.Allow {
		out.Reason = v
	}
	return out, nil
}

func fallbackDecision(in SendInput) SendDecision {
	switch {
	case !strings.HasPrefix(in.Phone, in.AllowedPrefix):
		return SendDecision{Reason: ReasonCountryNotAllowed}
	case in.RecentSends >= in.SendLimit:
		return SendDecision{Reason: ReasonRateLimited}
	}
	return SendDecision{Allow: true}
}
