package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var templatesCategory string

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "Browse the template catalog",
}

var templatesListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List templates",
	Long:    `List the seeded template catalog, optionally filtered by category.`,
	Args:    cobra.NoArgs,
	Run:     runTemplatesList,
}

var templatesGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show a template",
	Args:  cobra.ExactArgs(1),
	Run:   runTemplatesGet,
}

func init() {
	templatesListCmd.Flags().StringVar(&templatesCategory, "category", "", "Filter by category (banner, leaflet, poster)")
	rootCmd.AddCommand(templatesCmd)
	templatesCmd.AddCommand(templatesListCmd)
	templatesCmd.AddCommand(templatesGetCmd)
}

func runTemplatesList(cmd *cobra.Command, args []string) {
	templates, err := apiClient().ListTemplates(context.Background(), templatesCategory)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tDESCRIPTION")
	for _, t := range templates {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", t.ID, t.Name, t.Category, t.Description)
	}
	w.Flush()
}

func runTemplatesGet(cmd *cobra.Command, args []string) {
	template, err := apiClient().GetTemplate(context.Background(), args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("ID:          %s\n", template.ID)
	fmt.Printf("Name:        %s\n", template.Name)
	fmt.Printf("Category:    %s\n", template.Category)
	fmt.Printf("Description: %s\n", template.Description)
	fmt.Printf("Thumbnail:   %s\n", template.Thumbnail)
}
