package main

import (
	"fmt"
	"os"

	"github.com/mjwhitta/cli"
)

// Version info
var version = "0.1.0"

// Exit codes
const (
	ExitSuccess = iota
	ExitError
	ExitMissingArg
)

// Global flags
var flags struct {
	config   string
	host     string
	port     int
	user     string
	password string
	insecure bool
	byID     bool
	dynamic  bool
	timeout  string
	verbose  bool
}

// Command to run
var command string
var cmdArgs []string

func init() {
	// Configure cli
	cli.Align = true
	cli.Authors = []string{"zimadm authors"}
	cli.Banner = fmt.Sprintf("%s [OPTIONS] <command> [args...]", os.Args[0])
	cli.Info(
		"zimadm - Zimbra admin service client",
		"",
		"Talks to the admin SOAP service of a Zimbra server:",
		"domains, mailboxes, distribution lists and classes of",
		"service. Credentials come from flags, ZIMADM_* environment",
		"variables or a .zimadm.yaml config file.",
	)
	cli.ExitStatus(
		"0 - Success",
		"1 - Error",
	)

	// Define flags (short, long, default, description)
	cli.Flag(&flags.config, "c", "config", "", "Config file (default .zimadm.yaml)")
	cli.Flag(&flags.host, "H", "host", "", "Admin service host")
	cli.Flag(&flags.port, "P", "port", 0, "Admin service port (default 7071)")
	cli.Flag(&flags.user, "u", "user", "", "Admin user")
	cli.Flag(&flags.password, "p", "pass", "", "Admin password (prompted when empty)")
	cli.Flag(&flags.insecure, "k", "insecure", false, "Skip TLS certificate verification")
	cli.Flag(&flags.byID, "i", "id", false, "Treat entity arguments as ids, not names")
	cli.Flag(&flags.dynamic, "D", "dynamic", false, "Create a dynamic distribution list")
	cli.Flag(&flags.timeout, "t", "timeout", "", "Request timeout (e.g. 30s)")
	cli.Flag(&flags.verbose, "v", "verbose", false, "Verbose output")

	// Commands section
	cli.Section("Commands",
		"  domains       List all domains\n",
		"  domain        Show one domain\n",
		"  createdomain  Create a domain\n",
		"  deletedomain  Delete a domain\n",
		"  stats         Server-wide mailbox statistics\n",
		"  count         Count accounts in a domain, by class of service\n",
		"  mailboxes     List all mailboxes\n",
		"  mailbox       Show the mailbox of one account (by account id)\n",
		"  dl            Show a distribution list\n",
		"  createdl      Create a distribution list\n",
		"  deletedl      Delete a distribution list\n",
		"  cos           List all classes of service\n",
		"  raw           Fire any admin request by name, print raw XML",
	)

	cli.Parse()

	// Get command from args
	if cli.NArg() == 0 {
		cli.Usage(ExitMissingArg)
	}

	command = cli.Arg(0)
	if cli.NArg() > 1 {
		cmdArgs = cli.Args()[1:]
	}
}

func main() {
	var err error
	switch command {
	case "domains":
		err = cmdDomains(cmdArgs)
	case "domain":
		err = cmdDomain(cmdArgs)
	case "createdomain":
		err = cmdCreateDomain(cmdArgs)
	case "deletedomain":
		err = cmdDeleteDomain(cmdArgs)
	case "stats":
		err = cmdStats(cmdArgs)
	case "count":
		err = cmdCount(cmdArgs)
	case "mailboxes":
		err = cmdMailboxes(cmdArgs)
	case "mailbox":
		err = cmdMailbox(cmdArgs)
	case "dl":
		err = cmdDL(cmdArgs)
	case "createdl":
		err = cmdCreateDL(cmdArgs)
	case "deletedl":
		err = cmdDeleteDL(cmdArgs)
	case "cos":
		err = cmdCos(cmdArgs)
	case "raw":
		err = cmdRaw(cmdArgs)
	case "version":
		fmt.Println("zimadm", version)
	case "help":
		cli.Usage(ExitSuccess)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		cli.Usage(ExitError)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
