package cli

import (
	"github.com/spf13/cobra"
)

func newAdminCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Administer accounts, users, roles, and API keys",
	}

	cmd.AddCommand(newAccountCmd())
	cmd.AddCommand(newUserCmd())
	cmd.AddCommand(newRoleCmd())
	cmd.AddCommand(newKeyCmd())

	return cmd
}

func newAccountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Manage accounts",
	}

	var adminUser string
	create := &cobra.Command{
		Use:   "create <account-id>",
		Short: "Create an account with an initial admin user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			echoInvocation()
			return newAdminDispatcher().CreateAccount(cmd.Context(), args[0], adminUser, renderOpts())
		},
	}
	create.Flags().StringVar(&adminUser, "admin-user", "", "user ID of the account's first admin")
	create.MarkFlagRequired("admin-user")

	list := &cobra.Command{
		Use:   "list",
		Short: "List all accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			echoInvocation()
			return newAdminDispatcher().ListAccounts(cmd.Context(), renderOpts())
		},
	}

	del := &cobra.Command{
		Use:   "delete <account-id>",
		Short: "Delete an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			echoInvocation()
			return newAdminDispatcher().DeleteAccount(cmd.Context(), args[0], renderOpts())
		},
	}

	cmd.AddCommand(create, list, del)
	return cmd
}

func newUserCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage account users",
	}

	var role string
	register := &cobra.Command{
		Use:   "register <account-id> <user-id>",
		Short: "Register a user in an account",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			echoInvocation()
			return newAdminDispatcher().RegisterUser(cmd.Context(), args[0], args[1], role, renderOpts())
		},
	}
	register.Flags().StringVar(&role, "role", "member", "role for the new user")

	list := &cobra.Command{
		Use:   "list <account-id>",
		Short: "List the users of an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			echoInvocation()
			return newAdminDispatcher().ListUsers(cmd.Context(), args[0], renderOpts())
		},
	}

	remove := &cobra.Command{
		Use:   "remove <account-id> <user-id>",
		Short: "Remove a user from an account",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			echoInvocation()
			return newAdminDispatcher().RemoveUser(cmd.Context(), args[0], args[1], renderOpts())
		},
	}

	cmd.AddCommand(register, list, remove)
	return cmd
}

func newRoleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "role",
		Short: "Manage user roles",
	}

	set := &cobra.Command{
		Use:   "set <account-id> <user-id> <role>",
		Short: "Set a user's role",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			echoInvocation()
			return newAdminDispatcher().SetRole(cmd.Context(), args[0], args[1], args[2], renderOpts())
		},
	}

	cmd.AddCommand(set)
	return cmd
}

func newKeyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "key",
		Short: "Manage API keys",
	}

	regenerate := &cobra.Command{
		Use:   "regenerate <account-id> <user-id>",
		Short: "Regenerate a user's API key, invalidating the old one",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			echoInvocation()
			return newAdminDispatcher().RegenerateKey(cmd.Context(), args[0], args[1], renderOpts())
		},
	}

	cmd.AddCommand(regenerate)
	return cmd
}
