package app

import (
	"log"
	"os"

	fyneapp "fyne.io/fyne/v2/app"

	"yashubustudio/surveycloud/wordcloud"
)

const fyneAppID = "yashubustudio.surveycloud"

// Run initializes the word-cloud engine and starts the desktop UI.
// The tagging capability loads in the background; the UI opens
// immediately and shows a placeholder until extraction can run.
func Run() error {
	cfg, err := wordcloud.LoadConfig("")
	if err != nil {
		return err
	}
	logger := log.New(os.Stdout, "", log.LstdFlags)
	handle := wordcloud.NewTaggerHandle(func() (wordcloud.Tagger, error) {
		return wordcloud.NewProseTagger()
	})
	svc := wordcloud.NewService(cfg, handle, logger)
	defer svc.Close()

	a := fyneapp.NewWithID(fyneAppID)
	u := buildUI(a, svc)
	u.w.ShowAndRun()
	return nil
}
