package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/abhisek/studybuddy/internal/store"
	"github.com/abhisek/studybuddy/internal/textproc"
)

// ingestExtensions are the formats read directly. Anything else must be
// converted to text first.
var ingestExtensions = map[string]bool{".txt": true, ".md": true, ".markdown": true}

var ingestCmd = &cobra.Command{
	Use:   "ingest <file>...",
	Short: "Store text or markdown documents",
	Long: `Read one or more .txt or .md files (or "-" for stdin), normalize the
text and store each as a new document.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		if name != "" && len(args) > 1 {
			return fmt.Errorf("--name can only be used with a single file")
		}

		st, _, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		docs := make([]store.Document, 0, len(args))
		for _, path := range args {
			doc, err := readDocument(cmd.InOrStdin(), path, name)
			if err != nil {
				return err
			}
			if err := st.Documents().Put(cmd.Context(), &doc); err != nil {
				return fmt.Errorf("store %s: %w", doc.FileName, err)
			}
			docs = append(docs, doc)
		}

		fmt.Printf("%-36s  %-30s  %8s  %9s\n", "ID", "Name", "Chars", "Sentences")
		fmt.Println(strings.Repeat("─", 90))
		for _, d := range docs {
			sentences := len(textproc.Sentences(d.Text, d.ID, textproc.MinAnswerSentence))
			fmt.Printf("%-36s  %-30s  %8d  %9d\n", d.ID, truncate(d.FileName, 30), len([]rune(d.Text)), sentences)
		}
		fmt.Printf("\n%d %s ingested\n", len(docs), plural(len(docs), "document"))
		return nil
	},
}

func init() {
	ingestCmd.Flags().String("name", "", "Display name for the document (single file only)")
}

func readDocument(stdin io.Reader, path, name string) (store.Document, error) {
	var (
		raw []byte
		err error
	)
	if path == "-" {
		raw, err = io.ReadAll(stdin)
		if name == "" {
			name = "stdin.txt"
		}
	} else {
		ext := strings.ToLower(filepath.Ext(path))
		if !ingestExtensions[ext] {
			return store.Document{}, fmt.Errorf("unsupported file type %q for %s: convert it to .txt or .md first", ext, path)
		}
		raw, err = os.ReadFile(path)
		if name == "" {
			name = filepath.Base(path)
		}
	}
	if err != nil {
		return store.Document{}, fmt.Errorf("read %s: %w", path, err)
	}

	text := textproc.Normalize(string(raw))
	if text == "" {
		return store.Document{}, fmt.Errorf("%s has no text", path)
	}
	return store.Document{ID: uuid.NewString(), FileName: name, Text: text}, nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
