package main

import "github.com/Abhishek2312Singh/complain-management-system/internal/cli"

func main() {
	cli.Execute()
}
