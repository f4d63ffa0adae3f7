package components

import "io"

// NewDefaultRegistry constructs a registry pre-populated with the built-in
// primitives.
func NewDefaultRegistry() *Registry {
	registry := New()

	registry.MustRegister(NameButton, Descriptor{Renderer: buttonRenderer})
	registry.MustRegister(NameInput, Descriptor{Renderer: inputRenderer})
	registry.MustRegister(NameSpinner, Descriptor{Renderer: spinnerRenderer})
	registry.MustRegister(NameLogo, Descriptor{Renderer: logoRenderer})
	registry.MustRegister(NameLogoIcon, Descriptor{Renderer: logoIconRenderer})

	return registry
}

type buttonParams struct {
	Variant  string `param:"variant" validate:"omitempty,oneof=primary secondary outline ghost"`
	Size     string `param:"size" validate:"omitempty,oneof=sm md lg"`
	Class    string `param:"class" validate:"max=512"`
	ID       string `param:"id" validate:"max=128"`
	Type     string `param:"type" validate:"omitempty,oneof=button submit reset"`
	Name     string `param:"name" validate:"max=128"`
	Value    string `param:"value" validate:"max=512"`
	Disabled bool   `param:"disabled"`
	Text     string `param:"text" validate:"max=256"`
}

func buttonRenderer(w io.Writer, params Params) error {
	var decoded buttonParams
	if err := decodeParams(params, &decoded); err != nil {
		return err
	}
	variant, err := ParseVariant(decoded.Variant)
	if err != nil {
		return err
	}
	size, err := ParseButtonSize(decoded.Size)
	if err != nil {
		return err
	}
	return RenderButton(w, ButtonProps{
		Variant:  variant,
		Size:     size,
		Class:    decoded.Class,
		ID:       decoded.ID,
		Type:     decoded.Type,
		Name:     decoded.Name,
		Value:    decoded.Value,
		Disabled: decoded.Disabled,
		Text:     decoded.Text,
	})
}

type inputParams struct {
	Label       string `param:"label" validate:"max=256"`
	Error       string `param:"error" validate:"max=512"`
	Required    bool   `param:"required"`
	ID          string `param:"id" validate:"max=128"`
	Name        string `param:"name" validate:"max=128"`
	Type        string `param:"type" validate:"omitempty,oneof=text email password search tel url number date"`
	Placeholder string `param:"placeholder" validate:"max=256"`
	Value       string `param:"value" validate:"max=512"`
	Disabled    bool   `param:"disabled"`
	Class       string `param:"class" validate:"max=512"`
}

func inputRenderer(w io.Writer, params Params) error {
	var decoded inputParams
	if err := decodeParams(params, &decoded); err != nil {
		return err
	}
	return RenderInput(w, InputProps{
		Label:       decoded.Label,
		Error:       decoded.Error,
		Required:    decoded.Required,
		ID:          decoded.ID,
		Name:        decoded.Name,
		Type:        decoded.Type,
		Placeholder: decoded.Placeholder,
		Value:       decoded.Value,
		Disabled:    decoded.Disabled,
		Class:       decoded.Class,
	})
}

type spinnerParams struct {
	Size  int    `param:"size" validate:"omitempty,min=1,max=512"`
	Class string `param:"class" validate:"max=512"`
}

func spinnerRenderer(w io.Writer, params Params) error {
	var decoded spinnerParams
	if err := decodeParams(params, &decoded); err != nil {
		return err
	}
	return RenderLoadingSpinner(w, SpinnerProps{Size: decoded.Size, Class: decoded.Class})
}

type logoParams struct {
	Size     string `param:"size" validate:"omitempty,oneof=sm md lg xl"`
	Class    string `param:"class" validate:"max=512"`
	HideText bool   `param:"hide-text"`
}

func logoRenderer(w io.Writer, params Params) error {
	var decoded logoParams
	if err := decodeParams(params, &decoded); err != nil {
		return err
	}
	size, err := ParseLogoSize(decoded.Size)
	if err != nil {
		return err
	}
	return RenderLogo(w, LogoProps{Size: size, Class: decoded.Class, HideText: decoded.HideText})
}

type logoIconParams struct {
	Size  int    `param:"size" validate:"omitempty,min=1,max=512"`
	Class string `param:"class" validate:"max=512"`
}

func logoIconRenderer(w io.Writer, params Params) error {
	var decoded logoIconParams
	if err := decodeParams(params, &decoded); err != nil {
		return err
	}
	return RenderLogoIcon(w, LogoIconProps{Size: decoded.Size, Class: decoded.Class})
}
