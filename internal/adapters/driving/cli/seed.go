package cli

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/rebrand-tracker/internal/core/domain"
)

// seedFile is the TOML layout accepted by the seed command.
type seedFile struct {
	Authors []struct {
		ID   int64  `toml:"id"`
		Name string `toml:"name"`
	} `toml:"authors"`
	Documents []struct {
		ID       int64  `toml:"id"`
		Title    string `toml:"title"`
		Body     string `toml:"body"`
		AuthorID int64  `toml:"author_id"`
		Status   string `toml:"status"`
	} `toml:"documents"`
	Metadata []struct {
		ID      int64  `toml:"id"`
		OwnerID int64  `toml:"owner_id"`
		Key     string `toml:"key"`
		Value   string `toml:"value"`
	} `toml:"metadata"`
	Settings []struct {
		Name  string `toml:"name"`
		Value string `toml:"value"`
	} `toml:"settings"`
}

var seedCmd = &cobra.Command{
	Use:   "seed <file.toml>",
	Short: "Load content records from a TOML file",
	Long: `Load authors, documents, metadata and settings into the content store.

Records with an existing id (or setting name) are overwritten.

Example file:
  [[authors]]
  id = 1
  name = "Dana"

  [[documents]]
  id = 1
  title = "About us"
  body = "OldCo was founded in 1999."
  author_id = 1

  [[metadata]]
  owner_id = 1
  key = "seo_title"
  value = "About OldCo"

  [[settings]]
  name = "blogname"
  value = "OldCo Blog"`,
	Args: cobra.ExactArgs(1),
	RunE: runSeed,
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

func loadSeedFile(path string) (*seedFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading seed file: %w", err)
	}
	var f seedFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing seed file: %w", err)
	}
	return &f, nil
}

func runSeed(cmd *cobra.Command, args []string) error {
	if contentSeeder == nil {
		return fmt.Errorf("content %w", errNotConfigured)
	}

	f, err := loadSeedFile(args[0])
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	for _, a := range f.Authors {
		if err := contentSeeder.InsertAuthor(ctx, a.ID, a.Name); err != nil {
			return fmt.Errorf("inserting author %d: %w", a.ID, err)
		}
	}
	for _, d := range f.Documents {
		doc := domain.Document{ID: d.ID, Title: d.Title, Body: d.Body, AuthorID: d.AuthorID, Status: domain.DocumentStatus(d.Status)}
		if _, err := contentSeeder.InsertDocument(ctx, doc); err != nil {
			return fmt.Errorf("inserting document %q: %w", d.Title, err)
		}
	}
	for _, m := range f.Metadata {
		rec := domain.MetadataRecord{ID: m.ID, OwnerID: m.OwnerID, Key: m.Key, Value: m.Value}
		if _, err := contentSeeder.InsertMetadata(ctx, rec); err != nil {
			return fmt.Errorf("inserting metadata %q: %w", m.Key, err)
		}
	}
	for _, s := range f.Settings {
		if _, err := contentSeeder.InsertSetting(ctx, domain.Setting{Name: s.Name, Value: s.Value}); err != nil {
			return fmt.Errorf("inserting setting %q: %w", s.Name, err)
		}
	}

	if matchCache != nil {
		matchCache.Invalidate()
	}

	cmd.Printf("Seeded %d author(s), %d document(s), %d metadata record(s), %d setting(s).\n",
		len(f.Authors), len(f.Documents), len(f.Metadata), len(f.Settings))
	return nil
}
