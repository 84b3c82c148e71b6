package usecase

import "cartengine/internal/view"

// 最後に描いた内容を覚えておくだけのRenderer
type RecordingRenderer struct {
	Counter     view.CounterViewModel
	CartPage    view.CartPageViewModel
	CounterHits int
	PageHits    int
}

func (r *RecordingRenderer) RenderCounter(vm view.CounterViewModel) {
	r.Counter = vm
	r.CounterHits++
}

func (r *RecordingRenderer) RenderCartPage(vm view.CartPageViewModel) {
	r.CartPage = vm
	r.PageHits++
}
