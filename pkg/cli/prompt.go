package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/yorozuya-cybersecurity/oracis-agent/internal/oracle"
)

// collectCredentials assembles the connection descriptor from flags and
// environment, prompting on in for anything missing. The password is always
// prompted, masked when stdin is a terminal. Values are passed through
// uninterpreted; the server rejects what it cannot use.
func collectCredentials(in io.Reader) (oracle.Descriptor, error) {
	reader := bufio.NewReader(in)

	desc := oracle.Descriptor{
		Host:    viper.GetString("audit.host"),
		Port:    viper.GetString("audit.port"),
		Service: viper.GetString("audit.service"),
		User:    viper.GetString("audit.user"),
	}

	var err error
	if desc.Host == "" {
		if desc.Host, err = promptLine(reader, "Enter Oracle Host: "); err != nil {
			return desc, err
		}
	}
	if desc.Port == "" {
		if desc.Port, err = promptLine(reader, "Enter Port [default: 1521]: "); err != nil {
			return desc, err
		}
	}
	if desc.Port == "" {
		desc.Port = "1521"
	}
	if desc.Service == "" {
		if desc.Service, err = promptLine(reader, "Enter Service Name/SID: "); err != nil {
			return desc, err
		}
	}
	if desc.User == "" {
		if desc.User, err = promptLine(reader, "Enter Read-Only Username: "); err != nil {
			return desc, err
		}
	}

	desc.Password, err = promptPassword(reader, desc.User)
	return desc, err
}

func promptLine(reader *bufio.Reader, prompt string) (string, error) {
	fmt.Print(prompt)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// promptPassword reads the password without echo when stdin is a terminal,
// falling back to a plain line read otherwise (piped input, tests).
func promptPassword(reader *bufio.Reader, user string) (string, error) {
	fmt.Printf("Enter password for %s: ", user)
	if term.IsTerminal(int(os.Stdin.Fd())) {
		raw, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Println()
		if err != nil {
			return "", fmt.Errorf("read password: %w", err)
		}
		return string(raw), nil
	}

	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
