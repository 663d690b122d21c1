package exercises

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMessageDisplay(t *testing.T) {
	assert.Equal(t, "Ana: Olá!", Message{Sender: "Ana", Content: "Olá!"}.Display())
	assert.Equal(t, ": ", Message{}.Display())
}

func TestRobotFullName(t *testing.T) {
	assert.Equal(t, "R2-D2", Robot{Model1: "R2", Model2: "D2"}.FullName())
	assert.Equal(t, "-", Robot{}.FullName())
}

func TestGadgetCategory(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{code: "T100", want: "tablet"},
		{code: "P", want: "phone"},
		{code: "N-42", want: "notebook"},
		{code: "t100", want: "unknown"},
		{code: "X1", want: "unknown"},
		{code: "", want: "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, GadgetCategory(tt.code))
		})
	}
}

func ExampleMessage_Display() {
	fmt.Println(Message{Sender: "Treinador", Content: "Aquecimento às 7h"}.Display())
	// Output: Treinador: Aquecimento às 7h
}

func ExampleRobot_FullName() {
	fmt.Println(Robot{Model1: "C3", Model2: "PO"}.FullName())
	// Output: C3-PO
}

func ExampleGadgetCategory() {
	for _, code := range []string{"T1", "P2", "N3", "Z4"} {
		fmt.Println(GadgetCategory(code))
	}
	// Output:
	// tablet
	// phone
	// notebook
	// unknown
}
