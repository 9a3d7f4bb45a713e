// Package libcmd parses command-line arguments into caller-owned variables. It supports bool,
// string, int and float options, actions such as help and license, hidden alias names, and an
// arbitrarily deep tree of named subcommands.
//
// A program builds its command tree once, binds each option to a variable, and calls
// [Command.ComfortDigest] (or [Command.Digest] to handle errors itself) with os.Args. Parsing follows
// the first token that names a subcommand down the tree and applies the remaining tokens to the
// options of the command where it stops. Help text is generated from the same tree and shows the
// path the user actually typed.
package libcmd
