package logger

import (
	"bytes"
	"errors"
	"testing"
)

func testLogger() (*Logger, *bytes.Buffer) {
	conf := DefaultConfig()
	conf.JSONFormat.DisableTimestamp = true
	l := NewLogger("foons", conf)

	var b bytes.Buffer
	l.SetOutput(&b)
	return l, &b
}

func TestLog(t *testing.T) {
	l, b := testLogger()
	l.WithFields("basearg", 1).Info("test")

	expect := `{"basearg":1,"level":"info","msg":"test","ns":"foons"}` + "\n"
	if b.String() != expect {
		t.Fatal("unexpected log:", b.String())
	}
}

func TestErrorFieldLog(t *testing.T) {
	l, b := testLogger()
	l.Error("test", errors.New("fooerr"))

	expect := `{"error":"fooerr","level":"error","msg":"test","ns":"foons"}` + "\n"
	if b.String() != expect {
		t.Fatal("unexpected log:", b.String())
	}
}

func TestKeyValueFields(t *testing.T) {
	l, b := testLogger()
	l.Info("test", "partition", "titanx-short", "jobs", 24)

	expect := `{"jobs":24,"level":"info","msg":"test","ns":"foons","partition":"titanx-short"}` + "\n"
	if b.String() != expect {
		t.Fatal("unexpected log:", b.String())
	}
}
