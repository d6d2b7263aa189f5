package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"
)

func TestRunDoctorCmd_AllToolsPresent(t *testing.T) {
	t.Parallel()

	env, stdout, _ := testEnv(&fakeService{})
	env.LookPath = func(name string) (string, error) {
		// Resolve to non-executable paths so the version probe fails
		// quietly instead of running a real binary.
		return "/nonexistent/" + name, nil
	}

	if code := runDoctorCmd(nil, env); code != ExitSuccess {
		t.Errorf("exit code = %d, want %d", code, ExitSuccess)
	}
	out := stdout.String()
	if !strings.Contains(out, "mk4ht") || !strings.Contains(out, "ebook-convert") {
		t.Errorf("output missing tool names: %q", out)
	}
	if !strings.Contains(out, "status: ready") {
		t.Errorf("output = %q, want ready status", out)
	}
}

func TestRunDoctorCmd_MissingTool(t *testing.T) {
	t.Parallel()

	env, stdout, _ := testEnv(&fakeService{})
	env.LookPath = func(name string) (string, error) {
		if name == "mk4ht" {
			return "", fmt.Errorf("not found")
		}
		return "/nonexistent/" + name, nil
	}

	if code := runDoctorCmd(nil, env); code != ExitTool {
		t.Errorf("exit code = %d, want %d", code, ExitTool)
	}
	out := stdout.String()
	if !strings.Contains(out, "missing") || !strings.Contains(out, "status: errors") {
		t.Errorf("output = %q, want missing tool report", out)
	}
}

func TestRunDoctorCmd_JSON(t *testing.T) {
	t.Parallel()

	env, stdout, _ := testEnv(&fakeService{})
	env.LookPath = func(name string) (string, error) {
		return "/nonexistent/" + name, nil
	}

	if code := runDoctorCmd([]string{"--json"}, env); code != ExitSuccess {
		t.Errorf("exit code = %d, want %d", code, ExitSuccess)
	}

	var result doctorResult
	if err := json.Unmarshal(stdout.Bytes(), &result); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, stdout.String())
	}
	if len(result.Tools) != 2 {
		t.Errorf("got %d tools, want 2", len(result.Tools))
	}
	for _, tool := range result.Tools {
		if !tool.Found {
			t.Errorf("tool %s reported missing", tool.Name)
		}
	}
}
