package cli

import (
	"strings"

	"github.com/psaab/fortiparse/pkg/cmdtree"
)

// shellCompleter implements readline.AutoCompleter over the shell command
// tree and the loaded document's section paths.
type shellCompleter struct {
	cli *CLI
}

func (sc *shellCompleter) Do(line []rune, pos int) ([][]rune, int) {
	text := string(line[:pos])
	words, partial := splitCompletionInput(text)

	candidates := cmdtree.CompleteFromTree(cmdtree.ShellTree, words, partial, sc.cli.tree())
	if len(candidates) == 0 {
		return nil, 0
	}

	var result [][]rune
	for _, c := range candidates {
		result = append(result, []rune(c[len(partial):]+" "))
	}
	return result, len(partial)
}

// splitCompletionInput splits the typed text into completed words and the
// partial word under the cursor.
func splitCompletionInput(text string) (words []string, partial string) {
	words = strings.Fields(text)
	trailingSpace := len(text) > 0 && text[len(text)-1] == ' '
	if !trailingSpace && len(words) > 0 {
		partial = words[len(words)-1]
		words = words[:len(words)-1]
	}
	return words, partial
}

// showContextHelp handles '?' by printing candidates for the current line.
func (c *CLI) showContextHelp(prefix string) {
	words, partial := splitCompletionInput(prefix)

	candidates := cmdtree.CompleteFromTreeWithDesc(cmdtree.ShellTree, words, partial, c.tree())
	if len(candidates) == 0 {
		c.showHelp()
		return
	}
	cmdtree.WriteHelp(c.out, candidates)
}
