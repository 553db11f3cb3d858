package formhandler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/formhandler/form"
	"github.com/dmitrymomot/formhandler/handler"
	"github.com/dmitrymomot/formhandler/pkg/logger"
)

// SuccessFunc builds the response for a processed submission.
type SuccessFunc func(data any) handler.Response

// RenderFunc builds the response showing the form.
type RenderFunc func(view *form.View, data any) handler.Response

// Handler runs the lifecycle of one form for one request.
type Handler interface {
	// CreateForm builds the form from the configured type, data and options,
	// replacing any bound form. A non-nil r is bound to it.
	CreateForm(r *http.Request) (*form.Form, error)
	// Handle builds the form if needed, then processes a valid submission
	// and calls onSuccess, or calls render.
	Handle(r *http.Request, onSuccess SuccessFunc, render RenderFunc) (handler.Response, error)
	// CreateView returns the render model of the bound form.
	CreateView() (*form.View, error)

	SetData(data any) Handler
	SetFormOptions(opts form.Options) Handler
	SetExtraParams(params Params) Handler
	SetFormType(name string) Handler

	Form() *form.Form
	State() State
}

var _ Handler = (*FormHandler)(nil)

// FormHandler is the default Handler. It is not safe for concurrent use:
// resolve a new one per request.
type FormHandler struct {
	forms      *form.Factory
	dispatcher *Dispatcher
	processor  Processor
	logger     *slog.Logger

	formType string
	data     any
	options  form.Options
	params   Params

	form      *form.Form
	lifecycle *lifecycle
}

// Option configures a FormHandler.
type Option func(*FormHandler)

// WithLogger sets the logger used for lifecycle and failure records.
func WithLogger(l *slog.Logger) Option {
	return func(h *FormHandler) {
		if l != nil {
			h.logger = l
		}
	}
}

// WithFormType sets the initial form type.
func WithFormType(name string) Option {
	return func(h *FormHandler) {
		h.formType = name
	}
}

// WithFormOptions sets the initial form options.
func WithFormOptions(opts form.Options) Option {
	return func(h *FormHandler) {
		h.options = opts
	}
}

// WithExtraParams sets the initial processor params.
func WithExtraParams(params Params) Option {
	return func(h *FormHandler) {
		h.params = params
	}
}

// New creates a handler in the empty state. A nil dispatcher means no listeners;
// a nil processor accepts every valid submission without doing anything.
func New(forms *form.Factory, dispatcher *Dispatcher, processor Processor, opts ...Option) *FormHandler {
	if forms == nil {
		panic("formhandler: form factory is required")
	}
	if dispatcher == nil {
		dispatcher = NewDispatcher()
	}
	if processor == nil {
		processor = ProcessorFunc(func(context.Context, any, Params) error { return nil })
	}

	h := &FormHandler{
		forms:      forms,
		dispatcher: dispatcher,
		processor:  processor,
		logger:     logger.Discard(),
	}
	for _, opt := range opts {
		opt(h)
	}
	h.logger = h.logger.With(logger.Component("formhandler"))
	h.lifecycle = newLifecycle(h.logger)
	return h
}

func (h *FormHandler) SetData(data any) Handler {
	h.data = data
	return h
}

func (h *FormHandler) SetFormOptions(opts form.Options) Handler {
	h.options = opts
	return h
}

func (h *FormHandler) SetExtraParams(params Params) Handler {
	h.params = params
	return h
}

func (h *FormHandler) SetFormType(name string) Handler {
	h.formType = name
	return h
}

// Form returns the bound form, nil before CreateForm or Handle.
func (h *FormHandler) Form() *form.Form {
	return h.form
}

// State returns the current lifecycle state.
func (h *FormHandler) State() State {
	return h.lifecycle.Current()
}

// FormType returns the configured form type, falling back to the processor's.
func (h *FormHandler) FormType() string {
	if h.formType != "" {
		return h.formType
	}
	if ft, ok := h.processor.(FormTyper); ok {
		return ft.FormType()
	}
	return ""
}

func (h *FormHandler) CreateForm(r *http.Request) (*form.Form, error) {
	name := h.FormType()
	if name == "" {
		return nil, fmt.Errorf("%w: no form type configured", ErrFormNotDefined)
	}

	f, err := h.forms.Create(name, h.data, h.options)
	if err != nil {
		if errors.Is(err, form.ErrTypeNotFound) {
			return nil, errors.Join(fmt.Errorf("%w: %s", ErrFormTypeNotFound, name), err)
		}
		return nil, fmt.Errorf("formhandler: create form %s: %w", name, err)
	}

	ctx := context.Background()
	if r != nil {
		ctx = r.Context()
		if err := f.HandleRequest(r); err != nil {
			return nil, fmt.Errorf("formhandler: bind form %s: %w", name, err)
		}
	}

	h.form = f
	if err := h.lifecycle.Fire(ctx, transitionBuild, f); err != nil {
		return nil, fmt.Errorf("formhandler: %w", err)
	}
	return f, nil
}

func (h *FormHandler) CreateView() (*form.View, error) {
	if h.form == nil {
		return nil, fmt.Errorf("%w: call CreateForm or Handle first", ErrFormNotDefined)
	}
	return h.form.CreateView(), nil
}

func (h *FormHandler) Handle(r *http.Request, onSuccess SuccessFunc, render RenderFunc) (handler.Response, error) {
	if r == nil {
		return nil, ErrNilRequest
	}
	if h.form == nil {
		if _, err := h.CreateForm(r); err != nil {
			return nil, err
		}
	}

	ctx := r.Context()
	f := h.form
	ev := &Event{Request: r, Form: f, Data: f.Data()}
	log := h.logger.With(logger.FormType(f.Type().Name()))

	if f.IsSubmitted() && f.IsValid() {
		if err := h.lifecycle.Fire(ctx, transitionAccept, f); err != nil {
			return nil, fmt.Errorf("formhandler: %w", err)
		}
		return h.succeed(ctx, log, ev, onSuccess)
	}

	submitted := f.IsSubmitted()
	next := transitionSkip
	if submitted {
		next = transitionReject
	}
	if err := h.lifecycle.Fire(ctx, next, f); err != nil {
		return nil, fmt.Errorf("formhandler: %w", err)
	}

	resp, err := checkResponse(render(f.CreateView(), h.data), "render")
	if err != nil {
		return nil, err
	}

	if submitted && resp.StatusCode() == http.StatusOK {
		if err := h.dispatcher.Dispatch(ctx, ev, EventFail); err != nil {
			return nil, err
		}
		log.DebugContext(ctx, "form submission rejected", slog.Int("errors", len(f.Errors())))
		return resp.WithStatus(http.StatusUnprocessableEntity), nil
	}
	return resp, nil
}

func (h *FormHandler) succeed(ctx context.Context, log *slog.Logger, ev *Event, onSuccess SuccessFunc) (handler.Response, error) {
	h.data = ev.Form.Data()

	if h.dispatcher.HasListeners(EventProcess) {
		if err := h.dispatcher.Dispatch(ctx, ev, EventProcess); err != nil {
			return nil, err
		}
		h.data = ev.Data
	}

	if err := h.processor.Process(ctx, h.data, h.params); err != nil {
		log.ErrorContext(ctx, "form processing failed", logger.Error(err))
		return nil, fmt.Errorf("formhandler: process %s: %w", ev.Form.Type().Name(), err)
	}

	if err := h.dispatcher.Dispatch(ctx, ev, EventSuccess); err != nil {
		return nil, err
	}

	resp, err := checkResponse(onSuccess(h.data), "onSuccess")
	if err != nil {
		return nil, err
	}
	log.DebugContext(ctx, "form submission processed")

	if _, ok := resp.(handler.RedirectResponse); ok {
		return resp.WithStatus(http.StatusSeeOther), nil
	}
	return resp, nil
}

// checkResponse asserts a callback result carries a status code.
func checkResponse(resp handler.Response, callback string) (handler.StatusResponse, error) {
	if resp == nil {
		return nil, fmt.Errorf("%w: %s returned nil", ErrCallbackContractViolation, callback)
	}
	sr, ok := resp.(handler.StatusResponse)
	if !ok {
		return nil, fmt.Errorf("%w: %s returned %T", ErrCallbackContractViolation, callback, resp)
	}
	return sr, nil
}
