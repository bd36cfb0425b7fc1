package main

import "todolist-app.com/todolist-app/cmd"

func main() {
	cmd.Execute()
}
