package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vistaar/vistaar/internal/config"
	"github.com/vistaar/vistaar/internal/label"
	"github.com/vistaar/vistaar/internal/logging"
	"github.com/vistaar/vistaar/internal/uploads"
)

// newRenderCmd renders one label into the previews directory without
// starting the server.
func newRenderCmd() *cobra.Command {
	var (
		req label.Request
		pdf bool
	)
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a label preview from the command line",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.Load()
			closer := logging.Setup(logging.Options{Level: cfg.LogLevel, Console: true})
			defer closer.Close()

			c := label.New(uploads.New(cfg.UploadDir))
			render := c.Render
			if pdf {
				render = c.RenderPDF
			}
			req.Normalize()
			out, err := render(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", out.Format, out.Path)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&req.ProductName, "product", "", "product name")
	f.StringVar(&req.Category, "category", "", "product category")
	f.StringVar(&req.SellerName, "seller", "", "seller name")
	f.StringVar(&req.Ingredients, "ingredients", "", "comma-separated ingredients")
	f.StringVar(&req.NutritionalInfo, "nutrition", "", "nutrition facts as a JSON object")
	f.StringVar(&req.LogoPath, "logo", "", "path to a logo image")
	f.BoolVar(&pdf, "pdf", false, "render the PDF fallback instead of PNG")
	return cmd
}
