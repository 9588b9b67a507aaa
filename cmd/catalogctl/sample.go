package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"math/rand/v2"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/fr0stylo/partnerhub/pkg/csvimport"
)

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Write a synthetic catalog CSV to stdout",
	Long: `Write a synthetic catalog file for load and smoke testing. A share of the
rows is deliberately broken (blank names, unparsable or negative prices) so
rejections show up in the import summary.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		source, _ := cmd.Flags().GetString("source")
		rows, _ := cmd.Flags().GetInt("rows")
		invalid, _ := cmd.Flags().GetFloat64("invalid-ratio")
		seed, _ := cmd.Flags().GetUint64("seed")

		_, err := writeSample(cmd.OutOrStdout(), sampleOptions{
			Source:       csvimport.ParseSourceType(source),
			Rows:         rows,
			InvalidRatio: invalid,
			Seed:         seed,
		})
		return err
	},
}

func init() {
	sampleCmd.Flags().StringP("source", "s", string(csvimport.SourceStorefrontExport), "Source layout to generate")
	sampleCmd.Flags().Int("rows", 100, "Number of data rows")
	sampleCmd.Flags().Float64("invalid-ratio", 0.05, "Share of rows that should be rejected")
	sampleCmd.Flags().Uint64("seed", 1, "Random seed; the same seed yields the same file")
}

type sampleOptions struct {
	Source       csvimport.SourceType
	Rows         int
	InvalidRatio float64
	Seed         uint64
}

// sampleStats is what an import of the generated file should report.
type sampleStats struct {
	Rows      int
	Valid     int
	Invalid   int
	Inventory int
}

var (
	sampleAdjectives = []string{"Classic", "Compact", "Deluxe", "Eco", "Handmade", "Heavy-duty", "Mini", "Vintage"}
	sampleNouns      = []string{"Lamp", "Mug", "Backpack", "Notebook", "Chair", "Kettle", "Blanket", "Speaker"}
	sampleServices   = []string{"Massage", "Tune-up", "Consultation", "Cleaning", "Lesson"}
	sampleBrands     = []string{"Acme", "Globex", "Initech", "Umbrella", "Hooli"}
	sampleBodies     = []string{
		"<p>Everyday essential</p>",
		"<p>Soft, warm and \"cozy\"</p>",
		"<p>Ships in 2-3 days</p>",
		"",
	}
	sampleDescriptions = []string{"Everyday essential", "Soft, warm and \"cozy\"", "Ships in 2-3 days", ""}
)

func writeSample(w io.Writer, opts sampleOptions) (sampleStats, error) {
	if opts.Rows < 0 {
		return sampleStats{}, fmt.Errorf("rows must not be negative")
	}
	if opts.InvalidRatio < 0 || opts.InvalidRatio > 1 {
		return sampleStats{}, fmt.Errorf("invalid-ratio must be between 0 and 1")
	}

	var row func(rng *rand.Rand, invalid bool) ([]string, bool)
	var header []string
	switch opts.Source {
	case csvimport.SourceStorefrontExport:
		header = []string{"Title", "Body (HTML)", "Vendor", "Type", "Published", "Status", "Image Src", "Variant Price", "Variant Inventory Qty"}
		row = storefrontSampleRow
	case csvimport.SourcePartnerhubTemplate:
		header = csvimport.TemplateHeaders
		row = templateSampleRow
	default:
		return sampleStats{}, &csvimport.UnknownSourceError{Requested: opts.Source, Supported: csvimport.SupportedSources()}
	}

	rng := rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x5eed))
	out := csv.NewWriter(w)
	if err := out.Write(header); err != nil {
		return sampleStats{}, fmt.Errorf("write header: %w", err)
	}

	stats := sampleStats{Rows: opts.Rows}
	for i := 0; i < opts.Rows; i++ {
		invalid := rng.Float64() < opts.InvalidRatio
		fields, hasInventory := row(rng, invalid)
		if err := out.Write(fields); err != nil {
			return sampleStats{}, fmt.Errorf("write row %d: %w", i+1, err)
		}
		if invalid {
			stats.Invalid++
			continue
		}
		stats.Valid++
		if hasInventory {
			stats.Inventory++
		}
	}
	out.Flush()
	if err := out.Error(); err != nil {
		return sampleStats{}, fmt.Errorf("flush sample: %w", err)
	}
	return stats, nil
}

func storefrontSampleRow(rng *rand.Rand, invalid bool) ([]string, bool) {
	isService := rng.IntN(5) == 0
	title := pick(rng, sampleAdjectives) + " " + pick(rng, sampleNouns)
	kind := "Home & Garden"
	if isService {
		title = pick(rng, sampleServices)
		kind = "Service"
	}
	price := samplePrice(rng)
	quantity := ""
	if !isService && rng.IntN(4) != 0 {
		quantity = strconv.Itoa(rng.IntN(250))
	}
	if invalid {
		title, price = breakRow(rng, title, price)
	}
	status := "active"
	if rng.IntN(6) == 0 {
		status = "draft"
	}
	return []string{
		title,
		pick(rng, sampleBodies),
		pick(rng, sampleBrands),
		kind,
		strconv.FormatBool(rng.IntN(3) != 0),
		status,
		"https://cdn.example.com/img/" + strconv.Itoa(rng.IntN(10000)) + ".png",
		price,
		quantity,
	}, quantity != ""
}

func templateSampleRow(rng *rand.Rand, invalid bool) ([]string, bool) {
	isService := rng.IntN(5) == 0
	name := pick(rng, sampleAdjectives) + " " + pick(rng, sampleNouns)
	kind, unit := "physical_good", "piece"
	if isService {
		name, kind, unit = pick(rng, sampleServices), "service", "hour"
	}
	price := samplePrice(rng)
	quantity := ""
	if !isService && rng.IntN(4) != 0 {
		quantity = strconv.Itoa(rng.IntN(250))
	}
	if invalid {
		name, price = breakRow(rng, name, price)
	}
	return []string{
		name,
		pick(rng, sampleDescriptions),
		price,
		pick(rng, []string{"USD", "eur", ""}),
		kind,
		unit,
		pick(rng, sampleBrands),
		"",
		strconv.FormatBool(rng.IntN(4) != 0),
		quantity,
	}, quantity != ""
}

func breakRow(rng *rand.Rand, name, price string) (string, string) {
	switch rng.IntN(3) {
	case 0:
		return "", price
	case 1:
		return name, "n/a"
	default:
		return name, "-" + price
	}
}

func samplePrice(rng *rand.Rand) string {
	return strconv.FormatFloat(float64(rng.IntN(50000)+100)/100, 'f', 2, 64)
}

func pick(rng *rand.Rand, values []string) string {
	return values[rng.IntN(len(values))]
}
