package main

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// doctorResult holds all diagnostic information.
type doctorResult struct {
	Status string     `json:"status"` // "ready", "errors"
	Tools  []toolInfo `json:"tools"`
	System systemInfo `json:"system"`
	Errors []string   `json:"errors,omitempty"`
}

// toolInfo holds detection results for one external converter.
type toolInfo struct {
	Name    string `json:"name"`
	Found   bool   `json:"found"`
	Path    string `json:"path,omitempty"`
	Version string `json:"version,omitempty"`
}

// systemInfo holds system check results.
type systemInfo struct {
	OS           string `json:"os"`
	Arch         string `json:"arch"`
	TempWritable bool   `json:"temp_writable"`
}

// versionArgs maps tool names to the argument that prints their version.
// mk4ht has no version flag; its bare invocation prints a usage banner.
var versionArgs = map[string][]string{
	"ebook-convert": {"--version"},
}

// runDoctorCmd executes the doctor command and returns an exit code.
// Exit codes: 0 = all tools present, 4 = a converter is missing.
func runDoctorCmd(args []string, env *Environment) int {
	jsonOutput := false
	for _, arg := range args {
		if arg == "--json" {
			jsonOutput = true
		}
	}

	result := runDoctor(env)

	if jsonOutput {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(result)
	} else {
		printDoctorResult(env, result)
	}

	if result.Status == "errors" {
		return ExitTool
	}
	return ExitSuccess
}

// runDoctor performs all diagnostic checks.
func runDoctor(env *Environment) *doctorResult {
	result := &doctorResult{
		Status: "ready",
		System: systemInfo{
			OS:   runtime.GOOS,
			Arch: runtime.GOARCH,
		},
	}

	for _, name := range []string{"mk4ht", "ebook-convert"} {
		result.Tools = append(result.Tools, checkTool(name, env))
	}
	for _, tool := range result.Tools {
		if !tool.Found {
			result.Errors = append(result.Errors,
				fmt.Sprintf("%s not found on PATH", tool.Name))
		}
	}

	result.System.TempWritable = checkTempWritable()

	if len(result.Errors) > 0 {
		result.Status = "errors"
	}
	return result
}

// checkTool resolves one converter on PATH and probes its version.
func checkTool(name string, env *Environment) toolInfo {
	info := toolInfo{Name: name}

	path, err := env.LookPath(name)
	if err != nil {
		return info
	}
	info.Found = true
	info.Path = path

	if args, ok := versionArgs[name]; ok {
		out, err := exec.Command(path, args...).Output() // #nosec G204 -- path comes from LookPath
		if err == nil {
			info.Version = strings.TrimSpace(strings.SplitN(string(out), "\n", 2)[0])
		}
	}
	return info
}

// checkTempWritable verifies the temp directory accepts new files.
func checkTempWritable() bool {
	f, err := os.CreateTemp("", "tex2mobi-doctor-*")
	if err != nil {
		return false
	}
	name := f.Name()
	_ = f.Close()
	_ = os.Remove(name)
	return true
}

// printDoctorResult prints human-readable diagnostics.
func printDoctorResult(env *Environment, result *doctorResult) {
	fmt.Fprintf(env.Stdout, "tex2mobi doctor (%s/%s)\n\n", result.System.OS, result.System.Arch)

	for _, tool := range result.Tools {
		if tool.Found {
			detail := tool.Path
			if tool.Version != "" {
				detail = fmt.Sprintf("%s (%s)", filepath.Base(tool.Path), tool.Version)
			}
			fmt.Fprintf(env.Stdout, "  ok       %-14s %s\n", tool.Name, detail)
		} else {
			fmt.Fprintf(env.Stdout, "  missing  %-14s not found on PATH\n", tool.Name)
		}
	}

	if result.System.TempWritable {
		fmt.Fprintln(env.Stdout, "  ok       temp dir       writable")
	} else {
		fmt.Fprintln(env.Stdout, "  error    temp dir       not writable")
	}

	fmt.Fprintf(env.Stdout, "\nstatus: %s\n", result.Status)
}
