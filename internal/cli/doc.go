// Package cli implements the interactive vault shell.
//
// The shell is a line-oriented REPL. Entries are addressed by the 1-based
// number shown by "list". Master passwords and secrets are read without
// echo when stdin is a terminal.
//
//	register        create the vault user (first run only)
//	login / logout  unlock or lock the vault
//	list            list entries with their status
//	search <q>      filter entries by service or account
//	add / edit      add an entry or change its password
//	delete <n>      remove an entry after confirmation
//	show <n>        reveal a password for a limited time
//	hide <n>        hide a revealed password
//	copy <n>        copy a password; the clipboard is cleared later
//	user <n>        copy the account name
//	gen [len]       print a random password
//	phrase [words]  print a diceware passphrase
//	theme           toggle dark mode
//	exit            lock and quit
package cli
