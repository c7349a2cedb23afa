package cli

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
)

// chooseOption asks the user to pick one of the options by index.
// Zero options yield the empty string, a single option is picked
// without asking. Invalid input reprompts.
func chooseOption(label string, options []string) string {
	i := chooseIndex(label, options)
	if i < 0 {
		return ""
	}
	return options[i]
}

func chooseIndex(label string, options []string) int {
	if len(options) == 0 {
		return -1
	}
	if len(options) == 1 {
		return 0
	}
	fmt.Printf("%s:\n", label)
	for i, o := range options {
		fmt.Printf("option %d: %s\n", i+1, o)
	}
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				fmt.Printf("could not read input: %v\n", err)
				os.Exit(1)
			}
			return 0
		}
		i, err := strconv.Atoi(scanner.Text())
		if err != nil || i-1 < 0 || i-1 >= len(options) {
			fmt.Println("invalid index")
			continue
		}
		return i - 1
	}
}

// confirm asks a yes/no question, defaulting to no.
func confirm(question string) bool {
	fmt.Printf("%s [y/N] ", question)
	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		return false
	}
	answer := scanner.Text()
	return answer == "y" || answer == "Y" || answer == "yes"
}
