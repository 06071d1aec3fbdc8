// Package main is the entry point for the ec2manager CLI.
//
// ec2manager creates, lists and terminates EC2 instances, creating the
// SSH security group they are launched into when it does not exist yet.
//
// For detailed usage information, run:
//
//	ec2manager --help
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"ec2manager/internal/orchestrator"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		code := exitCode(err)
		switch {
		case code == exitUsage:
			fmt.Fprintln(os.Stderr, "Invalid input: run 'ec2manager --help' to see the instructions")
		case orchestrator.IsErrorCategory(err, orchestrator.ErrCancelled):
			fmt.Fprintln(os.Stderr, interruptedHint)
		}
		os.Exit(code)
	}
}
