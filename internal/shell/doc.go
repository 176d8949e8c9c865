// Package shell implements the interactive menu loop of the ordset
// CLI. It is a thin adapter: it owns no tree logic, it prompts for
// menu choices and keys on an injected reader and dispatches to a
// bst.Tree, printing results on an injected writer.
package shell
