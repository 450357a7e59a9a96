package panel

// Evaluate runs every check against the spec and aggregates the
// findings. A spec is approved when no check fails with error
// severity; warnings stay in the review for the human pass.
func Evaluate(spec *Spec) *Review {
	findings := []Finding{
		CheckSections(spec),
		CheckHoles(spec),
		CheckFeasibility(spec),
		CheckTaper(spec),
	}

	review := &Review{
		SpecID:   spec.ID,
		Findings: findings,
		WeightKg: Weight(spec),
	}
	for _, f := range findings {
		if f.Passed {
			continue
		}
		switch f.Severity {
		case SeverityError:
			review.Errors++
		case SeverityWarning:
			review.Warnings++
		}
	}
	review.Approved = review.Errors == 0
	return review
}
