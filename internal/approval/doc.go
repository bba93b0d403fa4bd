// Package approval routes course change requests through an ordered chain
// of approvers.
//
// Each rule pairs a predicate with an approver and a decision. Rules are
// asked in order and the first match wins, so a request that mentions both
// materials and structure is decided by the instructor:
//
//	chain := approval.DefaultChain()
//	res, ok := chain.HandleText("изменить материалы и структура")
//	// ok == true, res.Approver == approval.ApproverInstructor
//
// The default chain ends with an unconditional management rule, so every
// request gets a decision. Chains built with NewChain without a fallback
// may leave a request undecided.
package approval
