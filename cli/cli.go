package cli

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"
	"strings"

	"github.com/alexflint/go-arg"
	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/monokrome/bl4-sub000/ds"
	"github.com/monokrome/bl4-sub000/serial"
	"github.com/monokrome/bl4-sub000/serial/spart"
	"github.com/monokrome/bl4-sub000/serial/srarity"
	"github.com/monokrome/bl4-sub000/serial/sref"
	"github.com/monokrome/bl4-sub000/serial/stoken"
	"github.com/monokrome/bl4-sub000/ui"
)

type (
	Args struct {
		Decode      *DecodeCmd      `arg:"subcommand:decode"`
		Diff        *DiffCmd        `arg:"subcommand:diff"`
		Modify      *ModifyCmd      `arg:"subcommand:modify"`
		Rarity      *RarityCmd      `arg:"subcommand:rarity"`
		Batch       *BatchCmd       `arg:"subcommand:batch"`
		Interactive *InteractiveCmd `arg:"subcommand:interactive"`
		Catalog     string          `help:"path to a SQLite part catalog" placeholder:"parts.db"`
	}
	DecodeCmd struct {
		Serial string `arg:"positional,required" help:"item serial" placeholder:"@Ug..."`
		JSON   bool   `help:"print an ordered JSON summary instead of text"`
	}
	DiffCmd struct {
		A    string `arg:"positional,required" placeholder:"@Ug..."`
		B    string `arg:"positional,required" placeholder:"@Ug..."`
		JSON bool   `help:"print the differing positions as JSON"`
	}
	ModifyCmd struct {
		Base      string `arg:"positional,required" help:"serial to graft onto" placeholder:"@Ug..."`
		Source    string `arg:"positional,required" help:"serial to take parts from" placeholder:"@Ug..."`
		Positions []int  `arg:"--at,required" help:"token positions to replace"`
	}
	RarityCmd struct {
		Serial string `arg:"positional,required" help:"item serial" placeholder:"@Ug..."`
		Pools  string `help:"path to a SQLite drop pool table" placeholder:"pools.db"`
	}
	BatchCmd struct {
		Input   string `arg:"positional,required" help:"file with one serial per line" placeholder:"serials.txt"`
		Workers int    `help:"decoding goroutines, zero means one per CPU"`
	}
	InteractiveCmd struct{}
)

func (Args) Description() string {
	des := strings.Join(
		[]string{
			"The vault, cracked from the command line.\n",
			"A CLI utility to decode, compare, and rework the @U item serials",
			"a certain loot shooter tucks into its save files.",
		},
		"\n",
	)
	des += "\n"
	return des
}

// CleanSerial strips the pollution pasted serials usually carry:
// surrounding whitespace and the backslashes shells add when escaping
// alphabet symbols like ! and $.
func CleanSerial(raw string) string {
	return strings.ReplaceAll(strings.TrimSpace(raw), `\`, "")
}

func CheckExistence(path string) bool {
	_, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return false
	}
	return err == nil
}

func LoadCatalog(path string) (spart.Catalog, error) {
	if path == "" {
		return spart.MapCatalog{}, nil
	}
	return spart.LoadSQLiteCatalog(path)
}

func LoadPools(path string) (srarity.PoolTable, error) {
	if path == "" {
		return srarity.MapPoolTable{}, nil
	}
	return srarity.LoadSQLitePools(path)
}

// ModelSummary collects the interesting fields of a decoded model into
// an insertion-ordered map, so the JSON output reads top-down the same
// way the text output does.
func ModelSummary(model *serial.ItemModel) *ds.LinkedHashMap[string, any] {
	summary := ds.NewLinkedHashMap[string, any]()
	summary.Put("serial", model.Raw)
	summary.Put("item_type", model.TypeDescription())
	summary.Put("layout", string(model.Layout))
	if info, ok := model.WeaponInfo(); ok {
		summary.Put("weapon", info.Manufacturer+" "+info.WeaponType)
	}
	if name, ok := model.CategoryName(); ok {
		summary.Put("category", name)
	}
	if model.CategoryResolved {
		summary.Put("category_id", model.Category)
	}
	if residual, ok := model.CategoryResidual(); ok {
		summary.Put("category_remainder", residual)
	}
	if model.LevelKnown {
		summary.Put("level", model.Level)
		if model.LevelOutOfRange {
			summary.Put("level_out_of_range", true)
		}
	}
	if model.SeedKnown {
		summary.Put("seed", model.Seed)
	}
	elements := model.ElementTypes()
	if len(elements) > 0 {
		summary.Put(
			"elements",
			lo.Map(elements, func(element sref.ElementType, _ int) string {
				return element.Name
			}),
		)
	}
	summary.Put("tokens", model.FormatTokens())
	summary.Put("hex", model.HexDump())
	if len(model.Parts) > 0 {
		summary.Put("parts", model.Parts)
	}
	return summary
}

func PrintModel(model *serial.ItemModel) {
	fmt.Println("Serial: " + model.Raw)
	fmt.Printf("Item type: %c (%s)\n", model.TypeDiscriminant(), model.TypeDescription())
	if info, ok := model.WeaponInfo(); ok {
		fmt.Printf("Weapon: %s %s\n", info.Manufacturer, info.WeaponType)
	}
	if name, ok := model.CategoryName(); ok {
		fmt.Printf("Category: %s (%d)\n", name, model.Category)
	} else if model.CategoryResolved {
		fmt.Printf("Category: %d (unnamed)\n", model.Category)
	}
	if residual, ok := model.CategoryResidual(); ok && residual != 0 {
		fmt.Printf("Category remainder: %d\n", residual)
	}
	elements := model.ElementTypes()
	if len(elements) > 0 {
		names := lo.Map(elements, func(element sref.ElementType, _ int) string {
			return element.Name
		})
		fmt.Println("Element: " + strings.Join(names, ", "))
	}
	if model.LevelKnown {
		if model.LevelOutOfRange {
			fmt.Printf("Level: %d (out of range, raw %d)\n", model.Level, model.LevelRaw)
		} else {
			fmt.Printf("Level: %d\n", model.Level)
		}
	}
	if model.SeedKnown {
		fmt.Printf("Seed: %d\n", model.Seed)
	}
	fmt.Printf("Decoded bytes: %d\n", len(model.HexDump())/2)
	fmt.Println("Hex: " + model.HexDump())
	fmt.Println("Tokens: " + model.FormatTokens())
	if len(model.Parts) > 0 {
		fmt.Println("Parts:")
		lo.ForEach(model.Parts, func(part spart.ResolvedPart, _ int) {
			flag := ""
			if part.Ref.Scope == spart.ScopeSub {
				flag = " [+]"
			}
			if part.Resolved {
				fmt.Printf("  %s%s\n", part.Name, flag)
			} else {
				fmt.Printf("  (unresolved %s %d)%s\n", part.Ref.Scope, part.Ref.Index, flag)
			}
		})
	}
}

func StartDecode(serialText string, asJSON bool, catalog spart.Catalog) {
	model, err := serial.DecodeWithCatalog(CleanSerial(serialText), catalog)
	if err != nil {
		println("Serial could not be decoded!")
		println(err.Error())
		return
	}
	if asJSON {
		summaryBytes, err := json.MarshalIndent(ModelSummary(model), "", "  ")
		if err != nil {
			println("Summary could not be rendered!")
			println(err.Error())
			return
		}
		fmt.Println(string(summaryBytes))
		return
	}
	PrintModel(model)
}

func renderSide(token *stoken.Token) string {
	if token == nil {
		return "(none)"
	}
	return stoken.Render([]stoken.Token{*token})
}

func StartDiff(rawA string, rawB string, asJSON bool, catalog spart.Catalog) {
	a, err := serial.DecodeWithCatalog(CleanSerial(rawA), catalog)
	if err != nil {
		println("First serial could not be decoded!")
		println(err.Error())
		return
	}
	b, err := serial.DecodeWithCatalog(CleanSerial(rawB), catalog)
	if err != nil {
		println("Second serial could not be decoded!")
		println(err.Error())
		return
	}
	diffs, err := serial.Diff(a, b)
	if err != nil {
		println("Serials could not be compared!")
		println(err.Error())
		return
	}
	if asJSON {
		fmt.Println(ds.DumpJSON(diffs))
		return
	}
	fmt.Println("A: " + a.Raw)
	fmt.Println("   " + a.FormatTokens())
	fmt.Println("B: " + b.Raw)
	fmt.Println("   " + b.FormatTokens())
	if len(diffs) == 0 {
		fmt.Println("Tokens: IDENTICAL")
		return
	}
	fmt.Printf("Tokens: %d positions differ\n", len(diffs))
	lo.ForEach(diffs, func(diff serial.TokenDiff, _ int) {
		fmt.Printf("  %3d: %s -> %s\n", diff.Position, renderSide(diff.A), renderSide(diff.B))
	})
}

func StartModify(rawBase string, rawSource string, positions []int, catalog spart.Catalog) {
	base, err := serial.DecodeWithCatalog(CleanSerial(rawBase), catalog)
	if err != nil {
		println("Base serial could not be decoded!")
		println(err.Error())
		return
	}
	source, err := serial.DecodeWithCatalog(CleanSerial(rawSource), catalog)
	if err != nil {
		println("Source serial could not be decoded!")
		println(err.Error())
		return
	}
	modified, err := serial.Modify(base, source, positions)
	if err != nil {
		println("Parts could not be grafted!")
		println(err.Error())
		return
	}
	fmt.Println("Base:     " + base.Raw)
	fmt.Println("Source:   " + source.Raw)
	fmt.Println("Modified: " + modified.Raw)
	fmt.Println("Tokens:   " + modified.FormatTokens())
}

func StartRarity(serialText string, poolsPath string, catalog spart.Catalog) {
	model, err := serial.DecodeWithCatalog(CleanSerial(serialText), catalog)
	if err != nil {
		println("Serial could not be decoded!")
		println(err.Error())
		return
	}
	pools, err := LoadPools(poolsPath)
	if err != nil {
		println("Drop pool table could not be loaded!")
		println(err.Error())
		return
	}
	estimate, ok := serial.RarityEstimate(model, pools)
	if !ok {
		println("No rarity tier found among the resolved parts.")
		println("Tier detection needs part names, so pass --catalog with a part catalog.")
		return
	}
	tier, _ := sref.RarityByTier(estimate.Tier)
	fmt.Printf("Rarity: %s (tier %d)\n", tier.Name, estimate.Tier)
	if estimate.Category != "" {
		fmt.Println("Category: " + estimate.Category)
	}
	if estimate.WorldPoolKnown {
		fmt.Printf("World pool: %d legendaries\n", estimate.WorldPoolSize)
	}
	if estimate.SourcesKnown {
		fmt.Printf("Dedicated sources: %d\n", estimate.DedicatedSources)
	}
	fmt.Println("Odds: " + estimate.OddsDisplay())
}

func StartBatch(input string, workers int, catalog spart.Catalog) {
	if !CheckExistence(input) {
		println("Input file does not exist!")
		return
	}
	content, err := ioutil.ReadFile(input)
	if err != nil {
		println("Input file could not be read!")
		println(err.Error())
		return
	}
	serials := lo.FilterMap(
		strings.Split(string(content), "\n"),
		func(line string, _ int) (string, bool) {
			cleaned := CleanSerial(line)
			return cleaned, cleaned != ""
		},
	)
	results := serial.DecodeBatch(serials, catalog, workers)
	failures := 0
	lo.ForEach(results, func(result serial.BatchResult, index int) {
		if result.Err != nil {
			failures++
			fmt.Printf("%s  ERROR %s\n", serials[index], result.Err)
			return
		}
		fmt.Printf("%s  %s\n", result.Model.Raw, result.Model.FormatTokens())
	})
	fmt.Printf("Decoded %d of %d serials (%d errors)\n", len(results)-failures, len(results), failures)
}

func StartInteractive(catalog spart.Catalog) {
	ui.Start(catalog)
}

func Start() {
	args := Args{}
	arg.MustParse(&args)

	catalog, err := LoadCatalog(args.Catalog)
	if err != nil {
		println("Part catalog could not be loaded!")
		println(err.Error())
		return
	}
	switch {
	case args.Decode != nil:
		StartDecode(args.Decode.Serial, args.Decode.JSON, catalog)
	case args.Diff != nil:
		StartDiff(args.Diff.A, args.Diff.B, args.Diff.JSON, catalog)
	case args.Modify != nil:
		StartModify(args.Modify.Base, args.Modify.Source, args.Modify.Positions, catalog)
	case args.Rarity != nil:
		StartRarity(args.Rarity.Serial, args.Rarity.Pools, catalog)
	case args.Batch != nil:
		StartBatch(args.Batch.Input, args.Batch.Workers, catalog)
	default:
		StartInteractive(catalog)
	}
}
