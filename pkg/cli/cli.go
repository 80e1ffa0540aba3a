// Package cli implements the fortiparse interactive shell.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/tidwall/pretty"

	"github.com/psaab/fortiparse/pkg/cmdtree"
	"github.com/psaab/fortiparse/pkg/config"
	"github.com/psaab/fortiparse/pkg/configstore"
)

// CLI is the interactive shell over a loaded configuration document.
type CLI struct {
	rl       *readline.Instance
	store    *configstore.Store
	hostname string
	username string
	out      io.Writer
}

// New creates a CLI over the given store.
func New(store *configstore.Store) *CLI {
	hostname, _ := os.Hostname()
	if hostname == "" {
		hostname = "fortiparse"
	}
	username := os.Getenv("USER")
	if username == "" {
		username = "admin"
	}

	return &CLI{
		store:    store,
		hostname: hostname,
		username: username,
		out:      os.Stdout,
	}
}

// Run starts the interactive loop.
func (c *CLI) Run() error {
	var err error
	c.rl, err = readline.NewEx(&readline.Config{
		Prompt:          c.prompt(),
		HistoryFile:     "/tmp/fortiparse_history",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		AutoComplete:    &shellCompleter{cli: c},
		Listener: readline.FuncListener(func(line []rune, pos int, key rune) ([]rune, int, bool) {
			if key != '?' || pos < 1 {
				return line, pos, false
			}
			// Strip the '?' that readline already inserted.
			cleanLine := make([]rune, 0, len(line)-1)
			cleanLine = append(cleanLine, line[:pos-1]...)
			cleanLine = append(cleanLine, line[pos:]...)
			c.showContextHelp(string(cleanLine[:pos-1]))
			return cleanLine, pos - 1, true
		}),
	})
	if err != nil {
		return fmt.Errorf("readline init: %w", err)
	}
	defer c.rl.Close()
	c.out = c.rl.Stdout()

	fmt.Fprintln(c.out, "fortiparse - FortiOS configuration explorer")
	fmt.Fprintln(c.out, "Type '?' for help")
	fmt.Fprintln(c.out)

	for {
		line, err := c.rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			}
			if err == io.EOF {
				break
			}
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if err := c.dispatch(line); err != nil {
			if err == errExit {
				return nil
			}
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
	}
	return nil
}

var errExit = fmt.Errorf("exit")

func (c *CLI) dispatch(line string) error {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return nil
	}

	switch parts[0] {
	case "show":
		return c.handleShow(parts[1:])

	case "load":
		if len(parts) != 2 {
			return fmt.Errorf("usage: load <file>")
		}
		if err := c.store.Load(parts[1]); err != nil {
			return err
		}
		fmt.Fprintf(c.out, "loaded %s\n", parts[1])
		return nil

	case "reload":
		if err := c.store.Reload(); err != nil {
			return err
		}
		fmt.Fprintf(c.out, "reloaded %s\n", c.store.Path())
		return nil

	case "help", "?":
		c.showHelp()
		return nil

	case "quit", "exit":
		return errExit

	default:
		return fmt.Errorf("unknown command: %s (try '?')", parts[0])
	}
}

func (c *CLI) handleShow(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: show configuration|section|policies|interfaces|sections|history")
	}

	switch args[0] {
	case "configuration":
		if len(args) > 1 {
			return c.showSection(args[1])
		}
		return c.showJSON(c.tree())

	case "section":
		if len(args) != 2 {
			return fmt.Errorf("usage: show section <path>")
		}
		return c.showSection(args[1])

	case "policies":
		return c.showPolicies()

	case "interfaces":
		return c.showInterfaces()

	case "sections":
		return c.showSections()

	case "history":
		for _, h := range c.store.History() {
			fmt.Fprintf(c.out, "%s  %s\n", h.Timestamp.Format("2006-01-02 15:04:05"), h.Path)
		}
		return nil

	default:
		return fmt.Errorf("unknown show target: %s", args[0])
	}
}

// tree returns the loaded document, or nil. Handlers must check loaded().
func (c *CLI) tree() *config.Config {
	return c.store.Tree()
}

func (c *CLI) requireLoaded() error {
	if !c.store.Loaded() {
		return fmt.Errorf("no configuration loaded (use 'load <file>')")
	}
	return nil
}

func (c *CLI) showJSON(v json.Marshaler) error {
	if err := c.requireLoaded(); err != nil {
		return err
	}
	data, err := v.MarshalJSON()
	if err != nil {
		return fmt.Errorf("serialize: %w", err)
	}
	c.out.Write(pretty.PrettyOptions(data, &pretty.Options{Indent: "  "}))
	return nil
}

func (c *CLI) showSection(path string) error {
	if err := c.requireLoaded(); err != nil {
		return err
	}
	node, err := c.tree().Section(path)
	if err != nil {
		return err
	}
	return c.showJSON(node)
}

func (c *CLI) showSections() error {
	if err := c.requireLoaded(); err != nil {
		return err
	}
	for _, path := range cmdtree.SectionPaths(c.tree()) {
		fmt.Fprintln(c.out, path)
	}
	return nil
}

func (c *CLI) showPolicies() error {
	if err := c.requireLoaded(); err != nil {
		return err
	}
	policies := config.ExtractPolicies(c.tree())
	if len(policies) == 0 {
		fmt.Fprintln(c.out, "no firewall policies")
		return nil
	}
	for _, p := range policies {
		fmt.Fprintf(c.out, "policy %s: %s -> %s  src %s  dst %s  action %s  service %s\n",
			p.ID,
			orAny(p.Entry.SettingString("srcintf")),
			orAny(p.Entry.SettingString("dstintf")),
			orAny(p.Entry.SettingString("srcaddr")),
			orAny(p.Entry.SettingString("dstaddr")),
			orAny(p.Entry.SettingString("action")),
			orAny(p.Entry.SettingString("service")))
	}
	return nil
}

func (c *CLI) showInterfaces() error {
	if err := c.requireLoaded(); err != nil {
		return err
	}
	ifaces := config.ExtractInterfaces(c.tree())
	if len(ifaces) == 0 {
		fmt.Fprintln(c.out, "no interfaces")
		return nil
	}
	for _, intf := range ifaces {
		fmt.Fprintf(c.out, "%-16s vdom %-8s ip %-34s access [%s]\n",
			intf.Name,
			orAny(intf.Entry.SettingString("vdom")),
			orDash(intf.Entry.SettingString("ip")),
			intf.Entry.SettingString("allowaccess"))
	}
	return nil
}

func orAny(s string) string {
	if s == "" {
		return "any"
	}
	return s
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func (c *CLI) prompt() string {
	return fmt.Sprintf("%s@%s> ", c.username, c.hostname)
}

func (c *CLI) showHelp() {
	fmt.Fprintln(c.out, "Commands:")
	fmt.Fprintln(c.out, "  show configuration [section]  Show configuration as JSON")
	fmt.Fprintln(c.out, "  show section <path>           Show one section as JSON")
	fmt.Fprintln(c.out, "  show policies                 Show firewall policies in evaluation order")
	fmt.Fprintln(c.out, "  show interfaces               Show system interfaces")
	fmt.Fprintln(c.out, "  show sections                 List section paths")
	fmt.Fprintln(c.out, "  show history                  Show document load history")
	fmt.Fprintln(c.out, "  load <file>                   Load a configuration file")
	fmt.Fprintln(c.out, "  reload                        Re-parse the current file")
	fmt.Fprintln(c.out, "  quit                          Exit")
}
