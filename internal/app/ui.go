package app

import (
	"fmt"
	"image"
	"strings"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"yashubustudio/surveycloud/wordcloud"
)

const (
	cloudWidth  = 900
	cloudHeight = 560
	maxLogLines = 200
)

type uiState struct {
	service *wordcloud.Service

	w          fyne.Window
	input      *widget.Entry
	labelEntry *widget.Entry
	cloud      *canvas.Image
	emptyMsg   *widget.Label
	availBox   *fyne.Container
	removedBox *fyne.Container
	status     *widget.Label
	statusBind binding.String
	logBind    binding.String

	logMu    sync.Mutex
	logLines []string

	generateBtn *widget.Button
	exportBtn   *widget.Button
	loadBtn     *widget.Button

	lastImage image.Image
}

func buildUI(a fyne.App, svc *wordcloud.Service) *uiState {
	u := &uiState{service: svc}
	u.w = a.NewWindow("SurveyCloud - 自由記述ワードクラウド")

	u.statusBind = binding.NewString()
	_ = u.statusBind.Set("準備完了")
	u.logBind = binding.NewString()

	u.input = widget.NewMultiLineEntry()
	u.input.SetPlaceHolder("ここに回答を入力（1行=1件）")

	u.labelEntry = widget.NewEntry()
	u.labelEntry.SetPlaceHolder("設問ラベル（例: What do you like most?）")
	u.labelEntry.OnChanged = func(text string) {
		u.service.SetQuestionLabel(text)
	}

	u.status = widget.NewLabelWithData(u.statusBind)

	logView := widget.NewEntryWithData(u.logBind)
	logView.MultiLine = true
	logView.Wrapping = fyne.TextWrapWord
	logView.SetPlaceHolder("処理ログ")
	logView.Disable()

	u.cloud = canvas.NewImageFromImage(nil)
	u.cloud.FillMode = canvas.ImageFillContain
	u.cloud.SetMinSize(fyne.NewSize(cloudWidth/2, cloudHeight/2))
	u.emptyMsg = widget.NewLabel("ワードクラウドはまだありません")
	u.emptyMsg.Alignment = fyne.TextAlignCenter

	u.availBox = container.NewVBox()
	u.removedBox = container.NewVBox()

	u.generateBtn = widget.NewButtonWithIcon("クラウド生成", theme.ConfirmIcon(), func() { u.onGenerate() })
	u.exportBtn = widget.NewButtonWithIcon("PNGエクスポート", theme.DocumentSaveIcon(), func() { u.onExport() })
	u.loadBtn = widget.NewButtonWithIcon("ファイル読込", theme.FolderOpenIcon(), func() { u.onLoadFile() })

	controls := container.NewGridWithColumns(3, u.generateBtn, u.loadBtn, u.exportBtn)
	left := container.NewVBox(
		widget.NewLabelWithStyle("設問", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		u.labelEntry,
		widget.NewLabelWithStyle("回答テキスト", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewStack(u.input),
		controls,
		widget.NewSeparator(),
		u.status,
		widget.NewSeparator(),
		widget.NewLabelWithStyle("ログ", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewStack(logView),
	)

	wordLists := container.NewVBox(
		widget.NewLabelWithStyle("表示中の単語", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		u.availBox,
		widget.NewSeparator(),
		widget.NewLabelWithStyle("除外した単語", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		u.removedBox,
	)
	right := container.NewBorder(nil, nil, nil, container.NewVScroll(wordLists),
		container.NewStack(u.emptyMsg, u.cloud))

	split := container.NewHSplit(left, right)
	split.Offset = 0.3
	u.w.SetContent(split)
	u.w.Resize(fyne.NewSize(1280, 780))

	svc.SetOnUpdate(func() {
		fyne.Do(func() { u.refresh() })
	})
	return u
}

func (u *uiState) onGenerate() {
	lines := splitNonEmptyLines(u.input.Text)
	if len(lines) == 0 {
		dialog.ShowInformation("情報", "回答テキストが空です", u.w)
		return
	}
	u.setStatus(fmt.Sprintf("集計中... (%d件)", len(lines)))
	u.appendLog(fmt.Sprintf("回答 %d件 を集計キューに投入", len(lines)))
	u.service.SetQuestionLabel(u.labelEntry.Text)
	u.service.SetResponses(lines)
}

// refresh re-renders the cloud and rebuilds the toggle lists. Called
// on the UI thread whenever the engine reports new state.
func (u *uiState) refresh() {
	img, layout := u.service.RenderCloud(cloudWidth, cloudHeight)
	if img == nil {
		u.lastImage = nil
		u.cloud.Image = nil
		u.cloud.Refresh()
		u.emptyMsg.SetText("表示できる単語がありません（生成中の可能性があります）")
		u.emptyMsg.Show()
	} else {
		u.lastImage = img
		u.cloud.Image = img
		u.cloud.Refresh()
		u.emptyMsg.Hide()
	}

	available, removed := u.service.Words()
	u.rebuildWordButtons(u.availBox, available, false)
	u.rebuildWordButtons(u.removedBox, removed, true)

	if len(layout.Dropped) > 0 {
		u.appendLog(fmt.Sprintf("配置できなかった単語: %s", strings.Join(layout.Dropped, ", ")))
	}
	u.setStatus(fmt.Sprintf("表示 %d語 / 除外 %d語 / 配置不可 %d語",
		len(layout.Placed), len(removed), len(layout.Dropped)))
}

// rebuildWordButtons replaces the children of box with one toggle per
// word. Clicking moves the word to the other bucket and triggers a
// full re-placement pass.
func (u *uiState) rebuildWordButtons(box *fyne.Container, words []wordcloud.WordFrequency, restored bool) {
	box.RemoveAll()
	for _, wf := range words {
		word := wf.Word
		label := fmt.Sprintf("%s (%d)", truncateRunes(word, 24), wf.Frequency)
		var btn *widget.Button
		if restored {
			btn = widget.NewButtonWithIcon(label, theme.ContentUndoIcon(), func() {
				u.service.ToggleWord(word)
			})
		} else {
			btn = widget.NewButtonWithIcon(label, theme.CancelIcon(), func() {
				u.service.ToggleWord(word)
			})
		}
		btn.Alignment = widget.ButtonAlignLeading
		box.Add(btn)
	}
	box.Refresh()
}

func (u *uiState) onExport() {
	if u.lastImage == nil {
		dialog.ShowInformation("情報", "エクスポートできる画像がありません", u.w)
		return
	}
	fd := dialog.NewFileSave(func(uc fyne.URIWriteCloser, err error) {
		if err != nil || uc == nil {
			return
		}
		defer uc.Close()
		if err := wordcloud.EncodePNG(uc, u.lastImage); err != nil {
			dialog.ShowError(err, u.w)
			return
		}
		u.appendLog("PNGエクスポート完了")
	}, u.w)
	fd.SetFileName("wordcloud.png")
	fd.Show()
}

func (u *uiState) onLoadFile() {
	fd := dialog.NewFileOpen(func(rc fyne.URIReadCloser, err error) {
		if err != nil || rc == nil {
			return
		}
		path := rc.URI().Path()
		_ = rc.Close()
		meta, err := wordcloud.ReadResponseFileMetadata(path)
		if err != nil {
			dialog.ShowError(err, u.w)
			return
		}
		if len(meta.Columns) > 1 {
			u.chooseColumnAndLoad(path, meta)
			return
		}
		u.loadResponses(path, wordcloud.ResponseParseOptions{})
	}, u.w)
	fd.SetFilter(storage.NewExtensionFileFilter([]string{".txt", ".csv", ".tsv"}))
	fd.Show()
}

// chooseColumnAndLoad shows a select dialog for multi-column files so
// the user can override the auto-detected response column.
func (u *uiState) chooseColumnAndLoad(path string, meta wordcloud.ResponseFileMetadata) {
	options := make([]string, len(meta.Columns))
	for i, col := range meta.Columns {
		if col == "" {
			col = fmt.Sprintf("#%d", i+1)
		}
		options[i] = col
	}
	selected := meta.Suggested.ResponseColumn
	if selected == "" {
		selected = options[0]
	}
	sel := widget.NewSelect(options, func(value string) { selected = value })
	sel.SetSelected(selected)
	info := widget.NewLabel("回答が入っている列を選択してください")
	content := container.NewVBox(info, sel)
	dialog.NewCustomConfirm("列の選択", "読み込む", "キャンセル", content, func(ok bool) {
		if !ok {
			return
		}
		u.loadResponses(path, wordcloud.ResponseParseOptions{ResponseColumn: selected})
	}, u.w).Show()
}

func (u *uiState) loadResponses(path string, opts wordcloud.ResponseParseOptions) {
	q, err := wordcloud.ParseResponseFileWithOptions(path, opts)
	if err != nil {
		dialog.ShowError(err, u.w)
		return
	}
	if len(q.Responses) == 0 {
		dialog.ShowInformation("情報", "回答が検出できませんでした", u.w)
		return
	}
	u.input.SetText(strings.Join(q.Responses, "\n"))
	if q.Label != "" {
		u.labelEntry.SetText(q.Label)
		u.service.SetQuestionLabel(q.Label)
	}
	u.appendLog(fmt.Sprintf("ファイル読込: %d件", len(q.Responses)))
}

func (u *uiState) setStatus(text string) {
	_ = u.statusBind.Set(text)
}

func (u *uiState) appendLog(msg string) {
	line := fmt.Sprintf("[%s] %s", time.Now().Format("15:04:05"), msg)
	u.logMu.Lock()
	u.logLines = append(u.logLines, line)
	if len(u.logLines) > maxLogLines {
		u.logLines = u.logLines[len(u.logLines)-maxLogLines:]
	}
	text := strings.Join(u.logLines, "\n")
	u.logMu.Unlock()
	_ = u.logBind.Set(text)
}
