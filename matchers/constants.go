package matchers

import "github.com/termwoven/rewrite/atom"

// eliminateConstants pairs off every constant element of pattern with a
// distinct, structurally equal constant element of subject (spec §4.3),
// shrinking the combinatorial search a commutative or AC matcher would
// otherwise run over the non-constant remainder. It returns the indices
// of pattern/subject elements left over once every pattern constant has
// claimed one subject occurrence, or ok=false if some pattern constant
// has no remaining candidate.
func eliminateConstants(pattern, subject *atom.AtomSeq) (patternRest, subjectRest []int, ok bool) {
	usedSubject := make(map[int]bool, subject.Len())
	for i := 0; i < pattern.Len(); i++ {
		elem := pattern.At(i)
		if !elem.IsConstant() {
			patternRest = append(patternRest, i)
			continue
		}
		matched := false
		for _, cand := range subject.ConstantCandidates(elem) {
			if usedSubject[cand] {
				continue
			}
			if subject.At(cand).Equal(elem) {
				usedSubject[cand] = true
				matched = true
				break
			}
		}
		if !matched {
			return nil, nil, false
		}
	}
	for j := 0; j < subject.Len(); j++ {
		if !usedSubject[j] {
			subjectRest = append(subjectRest, j)
		}
	}
	return patternRest, subjectRest, true
}
