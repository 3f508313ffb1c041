package demo

import (
	"bytes"
	"testing"
)

func TestDemoWalkthroughOutput(t *testing.T) {
	var out bytes.Buffer
	Cmd.SetOut(&out)
	defer Cmd.SetOut(nil)

	if err := Cmd.RunE(Cmd, nil); err != nil {
		t.Fatalf("run: %v", err)
	}
	want := "Hello, World!\n" +
		"Hello, World!\n" +
		"Greetings, Developer!\n" +
		"Hello, Alice!\n" +
		"Hello, Bob!\n" +
		"Hello, Charlie!\n" +
		"expected error: name cannot be empty\n"
	if out.String() != want {
		t.Fatalf("unexpected output\nwant: %q\n got: %q", want, out.String())
	}
}
