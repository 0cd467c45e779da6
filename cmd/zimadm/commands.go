package main

import (
	"context"
	"fmt"
	"sort"
)

// cmdDomains handles the domains command.
func cmdDomains(args []string) error {
	ctx := context.Background()
	c, err := connect(ctx)
	if err != nil {
		return err
	}

	domains, err := c.GetAllDomains(ctx)
	if err != nil {
		return err
	}
	for _, d := range domains {
		fmt.Printf("%-36s  %s\n", d.ID, d.Name)
	}
	return nil
}

// cmdDomain handles the domain command.
func cmdDomain(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("domain name required")
	}

	ctx := context.Background()
	c, err := connect(ctx)
	if err != nil {
		return err
	}

	d, err := c.GetDomain(ctx, selector(args[0]))
	if err != nil {
		return err
	}
	fmt.Printf("id:   %s\nname: %s\n", d.ID, d.Name)
	printAttrs(d.Attrs)
	return nil
}

// cmdCreateDomain handles the createdomain command.
func cmdCreateDomain(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("domain name required")
	}

	ctx := context.Background()
	c, err := connect(ctx)
	if err != nil {
		return err
	}

	d, err := c.CreateDomain(ctx, args[0], nil)
	if err != nil {
		return err
	}
	fmt.Printf("[+] created domain %s (%s)\n", d.Name, d.ID)
	return nil
}

// cmdDeleteDomain handles the deletedomain command.
func cmdDeleteDomain(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("domain name required")
	}

	ctx := context.Background()
	c, err := connect(ctx)
	if err != nil {
		return err
	}

	if err := c.DeleteDomain(ctx, selector(args[0])); err != nil {
		return err
	}
	fmt.Printf("[+] deleted domain %s\n", args[0])
	return nil
}

// cmdStats handles the stats command.
func cmdStats(args []string) error {
	ctx := context.Background()
	c, err := connect(ctx)
	if err != nil {
		return err
	}

	stats, err := c.GetMailboxStats(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("mailboxes:  %d\n", stats.NumMboxes)
	fmt.Printf("total size: %d bytes\n", stats.TotalSize)
	return nil
}

// cmdCount handles the count command.
func cmdCount(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("domain name required")
	}

	ctx := context.Background()
	c, err := connect(ctx)
	if err != nil {
		return err
	}

	counts, err := c.CountAccount(ctx, selector(args[0]))
	if err != nil {
		return err
	}
	for _, cc := range counts {
		fmt.Printf("%-24s  %d\n", cc.Cos.Name, cc.Count)
	}
	return nil
}

// cmdMailboxes handles the mailboxes command.
func cmdMailboxes(args []string) error {
	ctx := context.Background()
	c, err := connect(ctx)
	if err != nil {
		return err
	}

	mboxes, err := c.GetAllMailboxes(ctx)
	if err != nil {
		return err
	}
	for _, m := range mboxes {
		fmt.Printf("%-8s  %-36s  %d bytes\n", m.ID, m.AccountID, m.Size)
	}
	return nil
}

// cmdMailbox handles the mailbox command.
func cmdMailbox(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("account id required")
	}

	ctx := context.Background()
	c, err := connect(ctx)
	if err != nil {
		return err
	}

	m, err := c.GetAccountMailbox(ctx, args[0])
	if err != nil {
		return err
	}
	fmt.Printf("mailbox: %s\nsize:    %d bytes\n", m.ID, m.Size)
	return nil
}

// cmdDL handles the dl command.
func cmdDL(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("distribution list name required")
	}

	ctx := context.Background()
	c, err := connect(ctx)
	if err != nil {
		return err
	}

	dl, err := c.GetDistributionList(ctx, selector(args[0]))
	if err != nil {
		return err
	}
	fmt.Printf("id:      %s\nname:    %s\ndynamic: %v\n", dl.ID, dl.Name, dl.Dynamic)
	for _, m := range dl.Members {
		fmt.Printf("member:  %s\n", m)
	}
	return nil
}

// cmdCreateDL handles the createdl command.
func cmdCreateDL(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("distribution list name required")
	}

	ctx := context.Background()
	c, err := connect(ctx)
	if err != nil {
		return err
	}

	dl, err := c.CreateDistributionList(ctx, args[0], flags.dynamic)
	if err != nil {
		return err
	}
	fmt.Printf("[+] created distribution list %s (%s)\n", dl.Name, dl.ID)
	return nil
}

// cmdDeleteDL handles the deletedl command.
func cmdDeleteDL(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("distribution list name required")
	}

	ctx := context.Background()
	c, err := connect(ctx)
	if err != nil {
		return err
	}

	if err := c.DeleteDistributionList(ctx, selector(args[0])); err != nil {
		return err
	}
	fmt.Printf("[+] deleted distribution list %s\n", args[0])
	return nil
}

// cmdCos handles the cos command.
func cmdCos(args []string) error {
	ctx := context.Background()
	c, err := connect(ctx)
	if err != nil {
		return err
	}

	cos, err := c.GetAllCos(ctx)
	if err != nil {
		return err
	}
	for _, cls := range cos {
		fmt.Printf("%-36s  %s\n", cls.ID, cls.Name)
	}
	return nil
}

// cmdRaw handles the raw command: fire any admin request by name and print
// the raw response XML.
func cmdRaw(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("request name required (e.g. GetAllDomainsRequest)")
	}

	ctx := context.Background()
	c, err := connect(ctx)
	if err != nil {
		return err
	}

	resp, err := c.Call(ctx, args[0])
	if err != nil {
		return err
	}
	fmt.Println(resp.String())
	return nil
}

func printAttrs(attrs map[string]string) {
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Printf("%s: %s\n", k, attrs[k])
	}
}
