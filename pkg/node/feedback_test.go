package node

import (
	"math"
	"testing"

	"github.com/arunprasath/audiograph/pkg/audio"
)

func TestFeedbackSine_ProducesBoundedSignal(t *testing.T) {
	f := NewFeedbackSine()
	f.Prepare(44100.0, 64)

	buf, _ := audio.NewBuffer(make([]float32, 64), 1, 64)
	f.Process(buf)

	for i, v := range buf.Raw() {
		if math.IsNaN(float64(v)) || math.Abs(float64(v)) > 1.0 {
			t.Fatalf("sample %d = %v, out of [-1,1] bounds or NaN", i, v)
		}
	}
}

func TestFeedbackSine_Deterministic(t *testing.T) {
	a := NewFeedbackSine()
	a.Prepare(44100.0, 32)
	bufA, _ := audio.NewBuffer(make([]float32, 32), 1, 32)
	a.Process(bufA)

	b := NewFeedbackSine()
	b.Prepare(44100.0, 32)
	bufB, _ := audio.NewBuffer(make([]float32, 32), 1, 32)
	b.Process(bufB)

	for i := range bufA.Raw() {
		if bufA.Raw()[i] != bufB.Raw()[i] {
			t.Errorf("sample %d diverges between two freshly-prepared instances: %v vs %v", i, bufA.Raw()[i], bufB.Raw()[i])
		}
	}
}

func TestFeedbackSine_Reset(t *testing.T) {
	f := NewFeedbackSine()
	f.Prepare(44100.0, 16)

	buf1, _ := audio.NewBuffer(make([]float32, 16), 1, 16)
	f.Process(buf1)
	first := make([]float32, 16)
	copy(first, buf1.Raw())

	f.Reset()

	buf2, _ := audio.NewBuffer(make([]float32, 16), 1, 16)
	f.Process(buf2)

	for i := range first {
		if buf2.Raw()[i] != first[i] {
			t.Errorf("after Reset, sample %d = %v, want %v", i, buf2.Raw()[i], first[i])
		}
	}
}
