// Package driftmail provides the official Go client for the Driftmail
// transactional email API.
//
// The Client wraps the REST resources — emails, templates, and webhook
// subscriptions — behind typed services. Webhook deliveries from Driftmail
// are verified and decoded by the webhooks subpackage, which works on raw
// request bytes and needs no Client.
//
// Quick start:
//
//	client, err := driftmail.New(os.Getenv("DRIFTMAIL_API_KEY"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	resp, err := client.Emails().Send(ctx, emails.SendRequest{
//	    From:    "Ada <ada@example.com>",
//	    To:      []string{"grace@example.com"},
//	    Subject: "Hello",
//	    Text:    "Hi Grace",
//	})
//
// Receiving webhooks:
//
//	verifier := webhooks.NewVerifier(subscriptionSecret)
//
//	http.HandleFunc("/hooks", func(w http.ResponseWriter, r *http.Request) {
//	    payload, _ := io.ReadAll(r.Body)
//	    event, err := verifier.Verify(payload, r.Header.Get(webhooks.HeaderName))
//	    if err != nil {
//	        w.WriteHeader(http.StatusBadRequest)
//	        return
//	    }
//	    switch data := event.Data.(type) {
//	    case *webhooks.EmailBouncedData:
//	        suppress(data.EmailID, data.BounceReason)
//	    }
//	})
package driftmail
