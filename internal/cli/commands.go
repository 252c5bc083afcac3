package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Abhishek2312Singh/complain-management-system/internal/api"
	"github.com/Abhishek2312Singh/complain-management-system/internal/config"
	"github.com/Abhishek2312Singh/complain-management-system/internal/view"
)

// parseStatus maps the user-facing spelling to the backend's status value.
func parseStatus(s string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pending":
		return view.StatusPending, nil
	case "in-process", "in_process", "inprocess":
		return view.StatusInProcess, nil
	case "closed":
		return view.StatusClosed, nil
	}
	return "", fmt.Errorf("unknown status %q (want pending, in-process or closed)", s)
}

func newLoginCmd(configPath *string) *cobra.Command {
	var username, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and store the session token",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(*configPath)
			if err != nil {
				return err
			}
			token, err := a.client.Login(cmd.Context(), username, password)
			if err != nil {
				return err
			}
			if err := a.sess.SetToken(token); err != nil {
				return err
			}
			fmt.Println("Logged in.")
			return nil
		},
	}
	cmd.Flags().StringVarP(&username, "username", "u", "", "admin username")
	cmd.Flags().StringVarP(&password, "password", "p", "", "admin password")
	cmd.MarkFlagRequired("username")
	cmd.MarkFlagRequired("password")
	return cmd
}

func newLogoutCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Drop the stored session token",
		RunE: func(_ *cobra.Command, _ []string) error {
			a, err := newApp(*configPath)
			if err != nil {
				return err
			}
			// Local only; the server keeps no session state to tear down.
			if err := a.sess.Clear(); err != nil {
				return err
			}
			fmt.Println("Logged out.")
			return nil
		},
	}
}

func newSubmitCmd(configPath *string) *cobra.Command {
	var name, mobile, email, address, complain string
	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Register a new complaint",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(*configPath)
			if err != nil {
				return err
			}
			mobileNum, err := strconv.ParseInt(strings.TrimSpace(mobile), 10, 64)
			if err != nil {
				return fmt.Errorf("mobile must be a number")
			}
			in := api.ComplaintInput{
				Username: name,
				Mobile:   mobileNum,
				Email:    email,
				Address:  address,
				Complain: complain,
			}
			resp, err := a.client.SubmitComplaint(cmd.Context(), in)
			if err != nil {
				return err
			}
			number, ok := view.ExtractComplaintNumber(resp)
			if !ok {
				number = view.NewLocalID()
			}
			entry := view.Payload{
				"complaintNumber": number,
				"username":        in.Username,
				"mobile":          in.Mobile,
				"email":           in.Email,
				"address":         in.Address,
				"complain":        in.Complain,
			}
			if body, ok := resp.(map[string]any); ok {
				for k, v := range body {
					if v != nil {
						entry[k] = v
					}
				}
			}
			if err := a.store.AddComplaint(entry); err != nil {
				return err
			}
			fmt.Println("Complain submitted. This is your complain number:", number)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "your full name")
	cmd.Flags().StringVar(&mobile, "mobile", "", "contact number")
	cmd.Flags().StringVar(&email, "email", "", "email address")
	cmd.Flags().StringVar(&address, "address", "", "postal address")
	cmd.Flags().StringVar(&complain, "complain", "", "complaint text")
	for _, f := range []string{"name", "mobile", "email", "address", "complain"} {
		cmd.MarkFlagRequired(f)
	}
	return cmd
}

func newLookupCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <complaint-number>",
		Short: "Fetch one complaint by its number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(*configPath)
			if err != nil {
				return err
			}
			p, err := a.client.Complaint(cmd.Context(), args[0], a.sess.Authenticated())
			if err != nil {
				return err
			}
			printRecords([]view.Record{view.Normalize(p)})
			return nil
		},
	}
}

func newListCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list <status>",
		Short: "List complaints in a status bucket",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := parseStatus(args[0])
			if err != nil {
				return err
			}
			a, err := newApp(*configPath)
			if err != nil {
				return err
			}
			records, err := fetchRecords(cmd, a, status)
			if err != nil {
				return err
			}
			if len(records) == 0 {
				fmt.Println("No complaints found.")
				return nil
			}
			printRecords(records)
			return nil
		},
	}
}

func newAssignCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "assign <complaint-number> <manager-username>",
		Short: "Assign a manager to a pending complaint",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(*configPath)
			if err != nil {
				return err
			}
			text, err := a.client.AssignManager(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			if text == "" {
				text = "Complain updated successfully."
			}
			fmt.Println(text)
			return nil
		},
	}
}

// fetchRecords loads the identifier list for status and then every detail.
// Fetch failures for individual items follow the configured detail policy.
func fetchRecords(cmd *cobra.Command, a *app, status string) ([]view.Record, error) {
	numbers, err := a.client.ComplaintNumbers(cmd.Context(), status)
	if err != nil {
		return nil, err
	}
	records := make([]view.Record, 0, len(numbers))
	for _, number := range numbers {
		p, err := a.client.Complaint(cmd.Context(), number, true)
		if err != nil {
			if a.cfg.DetailPolicy == config.PolicyAllOrNothing {
				return nil, err
			}
			continue
		}
		records = append(records, view.Normalize(p))
	}
	return records, nil
}

func printRecords(records []view.Record) {
	showManager := view.HasNonPending(records, nil)
	columns := view.Columns(showManager)

	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(columns, "\t"))
	for _, r := range records {
		cells := []string{r.Number, r.Reporter, r.Mobile, r.Address, r.Text, r.Date, r.Status}
		if showManager {
			cells = append(cells,
				view.ManagerCell(r.Status, r.ManagerName),
				view.ManagerCell(r.Status, r.ManagerEmail),
				view.ManagerCell(r.Status, r.ManagerMobile),
				view.ResponseCell(r.Status, r.Response),
			)
		}
		fmt.Fprintln(w, strings.Join(cells, "\t"))
	}
	w.Flush()
}
