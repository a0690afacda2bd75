// Package recommend picks a default distribution family for a
// three-point estimate (§4.10): a threshold cascade over the estimate's
// skew and coefficient of variation, with a short rationale attached to
// every result.
package recommend
