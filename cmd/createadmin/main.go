package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"

	"hostel-be-svc/internal/config"
	"hostel-be-svc/internal/database"
	"hostel-be-svc/internal/models"
	"hostel-be-svc/internal/repository"
)

func main() {
	var username, email, password, firstName, lastName string

	rootCmd := &cobra.Command{
		Use:   "createadmin",
		Short: "Create an administrator account for the hostel backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(password) < 8 {
				return fmt.Errorf("password must be at least 8 characters")
			}

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %v", err)
			}

			db, err := database.NewDatabase(&cfg.Database)
			if err != nil {
				return fmt.Errorf("failed to connect to database: %v", err)
			}
			defer db.Close()

			if err := db.AutoMigrate(); err != nil {
				return fmt.Errorf("failed to run database migrations: %v", err)
			}

			userRepo := repository.NewUserRepository(db.DB)

			exists, err := userRepo.UsernameExists(username)
			if err != nil {
				return fmt.Errorf("failed to check username: %v", err)
			}
			if exists {
				return fmt.Errorf("user %q already exists", username)
			}

			hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
			if err != nil {
				return fmt.Errorf("failed to hash password: %v", err)
			}

			user := &models.User{
				Username:  username,
				Email:     email,
				Password:  string(hashed),
				FirstName: firstName,
				LastName:  lastName,
				IsAdmin:   true,
			}
			if err := userRepo.CreateUser(user); err != nil {
				return fmt.Errorf("failed to create admin user: %v", err)
			}

			fmt.Printf("Admin user %q created successfully (id=%d)\n", user.Username, user.ID)
			return nil
		},
	}

	rootCmd.Flags().StringVar(&username, "username", "", "admin username")
	rootCmd.Flags().StringVar(&email, "email", "", "admin email address")
	rootCmd.Flags().StringVar(&password, "password", "", "admin password (min 8 characters)")
	rootCmd.Flags().StringVar(&firstName, "first-name", "", "admin first name")
	rootCmd.Flags().StringVar(&lastName, "last-name", "", "admin last name")
	_ = rootCmd.MarkFlagRequired("username")
	_ = rootCmd.MarkFlagRequired("password")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
