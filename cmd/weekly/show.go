package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/TheoAcker12/weekly-scheduler/internal/pdf"
	"github.com/TheoAcker12/weekly-scheduler/internal/render"
)

func newShowCommand() *cobra.Command {
	var flags selectionFlags

	command := &cobra.Command{
		Use:   "show",
		Short: "Show the weekly schedule",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, service, closeFn, err := newService(cmd.Context())
			if err != nil {
				return err
			}
			defer closeFn()

			opts, hint := flags.displayOptions(cmd.Flags(), service.Defaults())
			if hint != "" {
				fmt.Fprintln(cmd.ErrOrStderr(), hint)
			}

			view, err := service.Build(cmd.Context(), flags.params(cmd.Flags()), opts)
			if err != nil {
				return fmt.Errorf("service.Build > %w", err)
			}
			return render.NewTerminal(cmd.OutOrStdout()).Render(view)
		},
	}
	flags.register(command.Flags(), true)
	return command
}

func newPrintCommand() *cobra.Command {
	var flags selectionFlags
	var outputDirectory string
	var generatePDF bool

	command := &cobra.Command{
		Use:   "print",
		Short: "Write the printable weekly schedule as markdown and PDF",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, service, closeFn, err := newService(cmd.Context())
			if err != nil {
				return err
			}
			defer closeFn()

			opts, hint := flags.displayOptions(cmd.Flags(), service.Defaults())
			if hint != "" {
				fmt.Fprintln(cmd.ErrOrStderr(), hint)
			}
			view, err := service.Build(cmd.Context(), flags.params(cmd.Flags()), opts)
			if err != nil {
				return fmt.Errorf("service.Build > %w", err)
			}

			if outputDirectory == "" {
				outputDirectory = cfg.Outputs.PrintDirectory
			}
			markdownPath, err := render.WritePrint(outputDirectory, cfg.Outputs.PrintTemplate, view, time.Now())
			if err != nil {
				return fmt.Errorf("render.WritePrint > %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Weekly schedule written to: %s\n", markdownPath)

			if generatePDF {
				pdfPath, err := pdf.ConvertMarkdownToPDF(markdownPath)
				if err != nil {
					return fmt.Errorf("ConvertMarkdownToPDF(%s) > %w", markdownPath, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "PDF generated at: %s\n", pdfPath)
			}
			return nil
		},
	}
	flags.register(command.Flags(), false)
	command.Flags().StringVar(&outputDirectory, "output", "", "Output directory. Defaults to outputs.print_directory")
	command.Flags().BoolVar(&generatePDF, "pdf", true, "Generate PDF output in addition to markdown")
	return command
}

func newCategoriesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List categories and fields with the ids used by --sort-by, --include and --exclude",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, service, closeFn, err := newService(cmd.Context())
			if err != nil {
				return err
			}
			defer closeFn()

			categories, err := service.Categories(cmd.Context())
			if err != nil {
				return fmt.Errorf("service.Categories > %w", err)
			}
			return render.NewTerminal(cmd.OutOrStdout()).RenderCategories(categories)
		},
	}
}
