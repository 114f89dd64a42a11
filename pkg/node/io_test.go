package node

import (
	"testing"

	"github.com/arunprasath/audiograph/pkg/audio"
)

func TestInputOutput_PassThrough(t *testing.T) {
	in := NewInput()
	out := NewOutput()

	data := []float32{1, 2, 3, 4}
	buf, _ := audio.NewBuffer(data, 2, 2)

	in.Process(buf)
	out.Process(buf)

	want := []float32{1, 2, 3, 4}
	for i, w := range want {
		if data[i] != w {
			t.Errorf("data[%d] = %v, want %v (Input/Output must not mutate the buffer)", i, data[i], w)
		}
	}
}

func TestInputOutput_Kind(t *testing.T) {
	if NewInput().Kind() != KindInput {
		t.Errorf("Input.Kind() = %v, want %v", NewInput().Kind(), KindInput)
	}
	if NewOutput().Kind() != KindOutput {
		t.Errorf("Output.Kind() = %v, want %v", NewOutput().Kind(), KindOutput)
	}
}
