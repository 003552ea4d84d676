package metric

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// LoadTaskList reads the task list at path: one metric name per line,
// blank lines and #-comments skipped. Every name is validated against the
// registry once, up front; an unknown name is a configuration error for
// the whole run.
func LoadTaskList(path string, reg *Registry) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open task list: %w", err)
	}
	defer f.Close()

	var names []string
	seen := make(map[string]bool)
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		name := strings.TrimSpace(scanner.Text())
		if name == "" || strings.HasPrefix(name, "#") {
			continue
		}
		if _, ok := reg.Get(name); !ok {
			return nil, fmt.Errorf("task list line %d: unknown metric %q (available: %s)",
				lineNo, name, strings.Join(reg.Names(), ", "))
		}
		if seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read task list: %w", err)
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("task list %s selects no metrics", path)
	}
	return names, nil
}
