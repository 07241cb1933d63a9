package main

import "booksync/cmd"

func main() {
	cmd.Execute()
}
