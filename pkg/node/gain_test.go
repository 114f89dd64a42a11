package node

import (
	"testing"

	"github.com/arunprasath/audiograph/pkg/audio"
)

func TestGain_Scales(t *testing.T) {
	g := NewGain(0.5)
	data := []float32{1, -1, 2, -2}
	buf, _ := audio.NewBuffer(data, 1, 4)

	g.Process(buf)

	want := []float32{0.5, -0.5, 1, -1}
	for i, w := range want {
		if data[i] != w {
			t.Errorf("data[%d] = %v, want %v", i, data[i], w)
		}
	}
}

func TestGain_SetGain(t *testing.T) {
	g := NewGain(1.0)
	g.SetGain(2.0)

	data := []float32{1, 1}
	buf, _ := audio.NewBuffer(data, 1, 2)
	g.Process(buf)

	if data[0] != 2 || data[1] != 2 {
		t.Errorf("data = %v, want [2 2]", data)
	}
}
