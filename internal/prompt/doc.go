// Package prompt asks the user for text, yes/no, and integer answers.
//
// Every prompt shows its default and returns it on empty input. Integer
// prompts fall back to the default on unparseable input; yes/no prompts
// reject it with an InputError. Lines are read through a LineReader: readline
// on a terminal, a plain buffered reader otherwise.
package prompt
