package formula

// Level maps a Flesch Reading Ease score to a grade label.
func Level(flesch int) string {
	switch {
	case flesch >= 90:
		return "Very Easy (5th grade)"
	case flesch >= 80:
		return "Easy (6th grade)"
	case flesch >= 70:
		return "Fairly Easy (7th grade)"
	case flesch >= 60:
		return "Standard (8th-9th grade)"
	case flesch >= 50:
		return "Fairly Difficult (10th-12th grade)"
	case flesch >= 30:
		return "Difficult (College)"
	default:
		return "Very Difficult (Professional)"
	}
}
