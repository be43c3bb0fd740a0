// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-shellwords"

	"github.com/cybrota/leaderboard/avl"
)

// scoreTree is the tree driven by scripts and the tree command: decimal
// scores with free text payloads.
type scoreTree = avl.Tree[float64, string]

var errUsage = errors.New("wrong number of arguments")

// splitCommand splits a script line into words, honouring quotes.
func splitCommand(line string) ([]string, error) {
	args, err := shellwords.Parse(line)
	if err != nil {
		return nil, fmt.Errorf("failed to parse command %q: %v", line, err)
	}
	return args, nil
}

func parseKeys(args []string) ([]float64, error) {
	keys := make([]float64, 0, len(args))
	for _, arg := range args {
		k, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid score %q", arg)
		}
		keys = append(keys, k)
	}
	return keys, nil
}

// scriptRunner executes tree operations line by line, printing results to out.
type scriptRunner struct {
	tree *scoreTree
	out  io.Writer
	opts []avl.TextOption
}

func newScriptRunner(out io.Writer, opts []avl.TextOption) *scriptRunner {
	return &scriptRunner{tree: avl.New[float64, string](), out: out, opts: opts}
}

// Run executes every line of r. It stops at the first failing command.
func (sr *scriptRunner) Run(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		args, err := splitCommand(line)
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
		if len(args) == 0 {
			continue
		}
		if err := sr.exec(args[0], args[1:]); err != nil {
			return fmt.Errorf("line %d: %s: %w", lineNo, line, err)
		}
	}
	return scanner.Err()
}

func (sr *scriptRunner) exec(name string, args []string) error {
	switch name {
	case "insert":
		if len(args) < 1 || len(args) > 2 {
			return errUsage
		}
		keys, err := parseKeys(args[:1])
		if err != nil {
			return err
		}
		payload := ""
		if len(args) == 2 {
			payload = args[1]
		}
		return sr.tree.Insert(keys[0], payload)

	case "delete":
		if len(args) != 1 {
			return errUsage
		}
		keys, err := parseKeys(args)
		if err != nil {
			return err
		}
		e, err := sr.tree.Delete(keys[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(sr.out, "deleted %v %q\n", e.Key, e.Payload)

	case "smallest":
		if len(args) != 1 {
			return errUsage
		}
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid count %q", args[0])
		}
		removed := sr.tree.DeleteSmallest(n)
		parts := make([]string, len(removed))
		for i, e := range removed {
			parts[i] = fmt.Sprint(e.Key)
		}
		fmt.Fprintf(sr.out, "removed [%s]\n", strings.Join(parts, " "))

	case "add", "set":
		if len(args) < 1 {
			return errUsage
		}
		order, err := avl.ParseOrder(args[0])
		if err != nil {
			return err
		}
		values, err := parseKeys(args[1:])
		if err != nil {
			return err
		}
		mutate := sr.tree.AddValues
		if name == "set" {
			mutate = sr.tree.SetValues
		}
		n, err := mutate(values, order)
		if err != nil {
			return err
		}
		fmt.Fprintf(sr.out, "%s %d values %s\n", name, n, order)

	case "rebuild":
		rebuilt, err := sr.tree.Rebuild()
		if err != nil {
			return err
		}
		sr.tree = rebuilt

	case "size":
		fmt.Fprintln(sr.out, sr.tree.Size())

	case "text":
		fmt.Fprint(sr.out, sr.tree.ToText(sr.opts...))

	case "dot":
		fmt.Fprintln(sr.out, sr.tree.ToDiagram(sr.opts...))

	case "outline":
		fmt.Fprintln(sr.out, sr.tree.Outline())

	case "check":
		if err := sr.tree.Check(); err != nil {
			return err
		}
		fmt.Fprintln(sr.out, "ok")

	default:
		return fmt.Errorf("unknown command %q", name)
	}
	return nil
}

// renderTree builds a tree from keys and renders it in the given format.
func renderTree(keys []float64, format string, opts []avl.TextOption) (string, error) {
	tree := avl.New[float64, string]()
	for i, k := range keys {
		if err := tree.Insert(k, strconv.Itoa(i)); err != nil {
			return "", err
		}
	}
	switch format {
	case "", "text":
		return tree.ToText(opts...), nil
	case "dot":
		return tree.ToDiagram(opts...), nil
	case "outline":
		return tree.Outline() + "\n", nil
	}
	return "", fmt.Errorf("unknown format %q: use text, dot or outline", format)
}

// detailOptions enables every structural annotation.
func detailOptions() []avl.TextOption {
	return []avl.TextOption{avl.WithHeight(), avl.WithParent(), avl.WithBalance(), avl.WithIndex(), avl.WithSummary()}
}
