package admin

import "context"

// GetMailboxStats returns server-wide mailbox statistics.
func (c *Client) GetMailboxStats(ctx context.Context) (MailboxStats, error) {
	resp, err := c.GetMailboxStatsRequest(ctx)
	if err != nil {
		return MailboxStats{}, err
	}
	el, err := Single(resp, "stats")
	if err != nil {
		return MailboxStats{}, err
	}
	return mailboxStatsFromElement(el), nil
}

// GetAllMailboxes returns every mailbox on the server.
func (c *Client) GetAllMailboxes(ctx context.Context) ([]Mailbox, error) {
	resp, err := c.GetAllMailboxesRequest(ctx)
	if err != nil {
		return nil, err
	}
	var mboxes []Mailbox
	for _, el := range List(resp, "mbox") {
		mboxes = append(mboxes, mailboxFromElement(el))
	}
	return mboxes, nil
}

// GetAccountMailbox returns the mailbox of one account. Useful mostly for
// the store size and the mailbox id; the server reports little else here.
func (c *Client) GetAccountMailbox(ctx context.Context, accountID string) (Mailbox, error) {
	resp, err := c.GetMailboxRequest(ctx, accountID)
	if err != nil {
		return Mailbox{}, err
	}
	el, err := Single(resp, "mbox")
	if err != nil {
		return Mailbox{}, err
	}
	return mailboxFromElement(el), nil
}
