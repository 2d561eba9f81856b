package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var designsCmd = &cobra.Command{
	Use:   "designs",
	Short: "Inspect and manage designs",
}

var designsListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List designs",
	Args:    cobra.NoArgs,
	Run:     runDesignsList,
}

var designsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show a design",
	Args:  cobra.ExactArgs(1),
	Run:   runDesignsGet,
}

var designsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a design permanently",
	Args:  cobra.ExactArgs(1),
	Run:   runDesignsDelete,
}

var designsExportCmd = &cobra.Command{
	Use:   "export <id>",
	Short: "Request a PDF export for a design",
	Long:  `Request a PDF export for a design. The server fabricates the export descriptor; no file is downloaded.`,
	Args:  cobra.ExactArgs(1),
	Run:   runDesignsExport,
}

func init() {
	rootCmd.AddCommand(designsCmd)
	designsCmd.AddCommand(designsListCmd)
	designsCmd.AddCommand(designsGetCmd)
	designsCmd.AddCommand(designsDeleteCmd)
	designsCmd.AddCommand(designsExportCmd)
}

func runDesignsList(cmd *cobra.Command, args []string) {
	designs, err := apiClient().ListDesigns(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tTYPE\tSIZE\tSTATUS\tUPDATED")
	for _, d := range designs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			d.ID, d.Title, d.Type, d.Size, d.Status, d.UpdatedAt.Format("2006-01-02 15:04:05"))
	}
	w.Flush()
}

func runDesignsGet(cmd *cobra.Command, args []string) {
	design, err := apiClient().GetDesign(context.Background(), args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("ID:               %s\n", design.ID)
	fmt.Printf("Title:            %s\n", design.Title)
	fmt.Printf("Type:             %s\n", design.Type)
	fmt.Printf("Idea:             %s\n", design.IdeaDescription)
	if design.TemplateID != nil {
		fmt.Printf("Template:         %s\n", *design.TemplateID)
	}
	fmt.Printf("Size:             %s\n", design.Size)
	fmt.Printf("Color preference: %s\n", design.ColorPreference)
	fmt.Printf("Status:           %s\n", design.Status)
	fmt.Printf("Created:          %s\n", design.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Printf("Updated:          %s\n", design.UpdatedAt.Format("2006-01-02 15:04:05"))
}

func runDesignsDelete(cmd *cobra.Command, args []string) {
	if err := apiClient().DeleteDesign(context.Background(), args[0]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Design '%s' deleted\n", args[0])
}

func runDesignsExport(cmd *cobra.Command, args []string) {
	export, err := apiClient().ExportPDF(context.Background(), args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("File:     %s\n", export.FileName)
	fmt.Printf("Download: %s\n", export.DownloadURL)
	fmt.Printf("Size:     %s\n", export.Size)
	fmt.Printf("Pages:    %d\n", export.Pages)
	fmt.Printf("Format:   %s\n", export.Format)
}
