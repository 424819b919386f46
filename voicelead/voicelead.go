package voicelead

import (
	"sort"
	"strings"

	"github.com/jsphweid/voiceleader/constants"
	"github.com/jsphweid/voiceleader/model"
	"github.com/jsphweid/voiceleader/util"
	"github.com/jsphweid/voiceleader/voicing"
)

// Scoring weights. The top voice reads as the melody, so its movement
// counts double the aggregate.
const (
	weightTotalMovement    = 0.4
	weightTopVoiceMovement = 0.4 * 2
	weightMaxLeap          = 0.2
	spacingWeight          = 0.1
)

type pair struct {
	from, to, dist int
}

func distance(a, b model.Voice) int {
	return util.Abs(voicing.Pitch(a) - voicing.Pitch(b))
}

// Assign maps each voice of prev onto a voice of next in two passes:
// first every common tone (same note name, nearest octave), then
// nearest-neighbor among whatever is left. Both passes break ties by
// voice index, which keeps the whole pipeline deterministic. Empty
// voicings yield an empty assignment, not an error.
func Assign(prev, next model.Voicing) model.Assignment {
	var a model.Assignment

	assignedFrom := make([]bool, len(prev))
	assignedTo := make([]bool, len(next))

	// phase 1: hold common tones, closest octave first
	var matches []pair
	for i, pv := range prev {
		for j, nv := range next {
			if strings.EqualFold(pv.Note, nv.Note) {
				matches = append(matches, pair{from: i, to: j, dist: distance(pv, nv)})
			}
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].dist < matches[j].dist
	})
	for _, m := range matches {
		if assignedFrom[m.from] || assignedTo[m.to] {
			continue
		}
		assignedFrom[m.from] = true
		assignedTo[m.to] = true
		a.Movements = append(a.Movements, model.Movement{FromIndex: m.from, ToIndex: m.to, Distance: m.dist})
	}

	// phase 2: nearest neighbor over the remaining voices
	for {
		best := pair{from: -1}
		for i := range prev {
			if assignedFrom[i] {
				continue
			}
			for j := range next {
				if assignedTo[j] {
					continue
				}
				d := distance(prev[i], next[j])
				if best.from == -1 || d < best.dist {
					best = pair{from: i, to: j, dist: d}
				}
			}
		}
		if best.from == -1 {
			break
		}
		assignedFrom[best.from] = true
		assignedTo[best.to] = true
		a.Movements = append(a.Movements, model.Movement{FromIndex: best.from, ToIndex: best.to, Distance: best.dist})
	}

	topIdx := -1
	topPitch := 0
	for j, nv := range next {
		if p := voicing.Pitch(nv); topIdx == -1 || p > topPitch {
			topIdx = j
			topPitch = p
		}
	}
	for _, m := range a.Movements {
		a.TotalMovement += m.Distance
		if m.Distance > a.MaxLeap {
			a.MaxLeap = m.Distance
		}
		if m.ToIndex == topIdx {
			a.TopVoiceMovement = m.Distance
		}
	}
	return a
}

// rangePenalty charges each voice for how far its octave sits outside
// the target band.
func rangePenalty(v model.Voicing) float64 {
	var penalty float64
	for _, voice := range v {
		if voice.Octave < constants.OctaveBandLow {
			penalty += float64(constants.OctaveBandLow - voice.Octave)
		} else if voice.Octave > constants.OctaveBandHigh {
			penalty += float64(voice.Octave - constants.OctaveBandHigh)
		}
	}
	return penalty
}

// spacingPenalty charges deviation from evenly spread voices.
func spacingPenalty(v model.Voicing) float64 {
	if len(v) < 3 {
		return 0
	}
	span := voicing.Pitch(v[len(v)-1]) - voicing.Pitch(v[0])
	ideal := float64(span) / float64(len(v)-1)
	var deviation float64
	for i := 1; i < len(v); i++ {
		interval := float64(voicing.Pitch(v[i]) - voicing.Pitch(v[i-1]))
		if interval > ideal {
			deviation += interval - ideal
		} else {
			deviation += ideal - interval
		}
	}
	return deviation * spacingWeight
}

// Score rates a candidate, lower is better. With no previous voicing
// only range and spacing count; otherwise the assignment aggregates
// dominate, with the melodic top line weighted twice as heavily as the
// total.
func Score(candidate, previous model.Voicing) float64 {
	score := rangePenalty(candidate) + spacingPenalty(candidate)
	if len(previous) == 0 {
		return score
	}
	a := Assign(previous, candidate)
	return weightTotalMovement*float64(a.TotalMovement) +
		weightTopVoiceMovement*float64(a.TopVoiceMovement) +
		weightMaxLeap*float64(a.MaxLeap) +
		score
}

// Optimize picks the cheapest voicing for a chord given what sounded
// before it. Ties keep the first-generated candidate, so identical
// inputs always produce identical output.
func Optimize(notes []string, previous model.Voicing, targetOctave int) model.Voicing {
	if targetOctave == 0 {
		targetOctave = constants.DefaultOctave
	}
	candidates := voicing.Candidates(notes, targetOctave)
	best := candidates[0]
	bestScore := Score(best, previous)
	for _, candidate := range candidates[1:] {
		if s := Score(candidate, previous); s < bestScore {
			best = candidate
			bestScore = s
		}
	}
	return best
}

// OptimizeProgression runs Optimize over a chord sequence, feeding each
// step's winner in as the next step's previous voicing.
func OptimizeProgression(chords [][]string, targetOctave int) []model.Voicing {
	voicings := make([]model.Voicing, 0, len(chords))
	var previous model.Voicing
	for _, notes := range chords {
		v := Optimize(notes, previous, targetOctave)
		voicings = append(voicings, v)
		previous = v
	}
	return voicings
}
