package awsapis

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/controltower"
)

// Interfaces
type ControlTowerApi interface {
	LandingZoneGetter
	LandingZoneCreator
	LandingZoneUpdater
	LandingZoneResetter
	LandingZoneDeleter
	LandingZoneOperationGetter
	BaselineEnabler
	BaselineDisabler
	EnabledBaselineResetter
	BaselineOperationGetter
	ControlEnabler
	ControlDisabler
	ControlOperationGetter
	ListLandingZonesPaginator
	ListBaselinesPaginator
	ListEnabledBaselinesPaginator
	ListEnabledControlsPaginator
}

type LandingZoneGetter interface {
	GetLandingZone(ctx context.Context,
		params *controltower.GetLandingZoneInput,
		optFns ...func(*controltower.Options)) (*controltower.GetLandingZoneOutput, error)
}

type LandingZoneCreator interface {
	CreateLandingZone(ctx context.Context,
		params *controltower.CreateLandingZoneInput,
		optFns ...func(*controltower.Options)) (*controltower.CreateLandingZoneOutput, error)
}

type LandingZoneUpdater interface {
	UpdateLandingZone(ctx context.Context,
		params *controltower.UpdateLandingZoneInput,
		optFns ...func(*controltower.Options)) (*controltower.UpdateLandingZoneOutput, error)
}

type LandingZoneResetter interface {
	ResetLandingZone(ctx context.Context,
		params *controltower.ResetLandingZoneInput,
		optFns ...func(*controltower.Options)) (*controltower.ResetLandingZoneOutput, error)
}

type LandingZoneDeleter interface {
	DeleteLandingZone(ctx context.Context,
		params *controltower.DeleteLandingZoneInput,
		optFns ...func(*controltower.Options)) (*controltower.DeleteLandingZoneOutput, error)
}

type LandingZoneOperationGetter interface {
	GetLandingZoneOperation(ctx context.Context,
		params *controltower.GetLandingZoneOperationInput,
		optFns ...func(*controltower.Options)) (*controltower.GetLandingZoneOperationOutput, error)
}

type BaselineEnabler interface {
	EnableBaseline(ctx context.Context,
		params *controltower.EnableBaselineInput,
		optFns ...func(*controltower.Options)) (*controltower.EnableBaselineOutput, error)
}

type BaselineDisabler interface {
	DisableBaseline(ctx context.Context,
		params *controltower.DisableBaselineInput,
		optFns ...func(*controltower.Options)) (*controltower.DisableBaselineOutput, error)
}

type EnabledBaselineResetter interface {
	ResetEnabledBaseline(ctx context.Context,
		params *controltower.ResetEnabledBaselineInput,
		optFns ...func(*controltower.Options)) (*controltower.ResetEnabledBaselineOutput, error)
}

type BaselineOperationGetter interface {
	GetBaselineOperation(ctx context.Context,
		params *controltower.GetBaselineOperationInput,
		optFns ...func(*controltower.Options)) (*controltower.GetBaselineOperationOutput, error)
}

type ControlEnabler interface {
	EnableControl(ctx context.Context,
		params *controltower.EnableControlInput,
		optFns ...func(*controltower.Options)) (*controltower.EnableControlOutput, error)
}

type ControlDisabler interface {
	DisableControl(ctx context.Context,
		params *controltower.DisableControlInput,
		optFns ...func(*controltower.Options)) (*controltower.DisableControlOutput, error)
}

type ControlOperationGetter interface {
	GetControlOperation(ctx context.Context,
		params *controltower.GetControlOperationInput,
		optFns ...func(*controltower.Options)) (*controltower.GetControlOperationOutput, error)
}

type ListLandingZonesPaginator interface {
	NewListLandingZonesPaginator(params *controltower.ListLandingZonesInput) ListLandingZonesPager
}

type ListLandingZonesPager interface {
	HasMorePages() bool
	NextPage(context.Context, ...func(*controltower.Options)) (*controltower.ListLandingZonesOutput, error)
}

type ListBaselinesPaginator interface {
	NewListBaselinesPaginator(params *controltower.ListBaselinesInput) ListBaselinesPager
}

type ListBaselinesPager interface {
	HasMorePages() bool
	NextPage(context.Context, ...func(*controltower.Options)) (*controltower.ListBaselinesOutput, error)
}

type ListEnabledBaselinesPaginator interface {
	NewListEnabledBaselinesPaginator(params *controltower.ListEnabledBaselinesInput) ListEnabledBaselinesPager
}

type ListEnabledBaselinesPager interface {
	HasMorePages() bool
	NextPage(context.Context, ...func(*controltower.Options)) (*controltower.ListEnabledBaselinesOutput, error)
}

type ListEnabledControlsPaginator interface {
	NewListEnabledControlsPaginator(params *controltower.ListEnabledControlsInput) ListEnabledControlsPager
}

type ListEnabledControlsPager interface {
	HasMorePages() bool
	NextPage(context.Context, ...func(*controltower.Options)) (*controltower.ListEnabledControlsOutput, error)
}

// Implementation
type AwsControlTowerApi struct {
	client *controltower.Client
}

func (a *AwsControlTowerApi) GetLandingZone(ctx context.Context,
	params *controltower.GetLandingZoneInput,
	optFns ...func(*controltower.Options)) (*controltower.GetLandingZoneOutput, error) {
	return a.client.GetLandingZone(ctx, params, optFns...)
}

func (a *AwsControlTowerApi) CreateLandingZone(ctx context.Context,
	params *controltower.CreateLandingZoneInput,
	optFns ...func(*controltower.Options)) (*controltower.CreateLandingZoneOutput, error) {
	return a.client.CreateLandingZone(ctx, params, optFns...)
}

func (a *AwsControlTowerApi) UpdateLandingZone(ctx context.Context,
	params *controltower.UpdateLandingZoneInput,
	optFns ...func(*controltower.Options)) (*controltower.UpdateLandingZoneOutput, error) {
	return a.client.UpdateLandingZone(ctx, params, optFns...)
}

func (a *AwsControlTowerApi) ResetLandingZone(ctx context.Context,
	params *controltower.ResetLandingZoneInput,
	optFns ...func(*controltower.Options)) (*controltower.ResetLandingZoneOutput, error) {
	return a.client.ResetLandingZone(ctx, params, optFns...)
}

func (a *AwsControlTowerApi) DeleteLandingZone(ctx context.Context,
	params *controltower.DeleteLandingZoneInput,
	optFns ...func(*controltower.Options)) (*controltower.DeleteLandingZoneOutput, error) {
	return a.client.DeleteLandingZone(ctx, params, optFns...)
}

func (a *AwsControlTowerApi) GetLandingZoneOperation(ctx context.Context,
	params *controltower.GetLandingZoneOperationInput,
	optFns ...func(*controltower.Options)) (*controltower.GetLandingZoneOperationOutput, error) {
	return a.client.GetLandingZoneOperation(ctx, params, optFns...)
}

func (a *AwsControlTowerApi) EnableBaseline(ctx context.Context,
	params *controltower.EnableBaselineInput,
	optFns ...func(*controltower.Options)) (*controltower.EnableBaselineOutput, error) {
	return a.client.EnableBaseline(ctx, params, optFns...)
}

func (a *AwsControlTowerApi) DisableBaseline(ctx context.Context,
	params *controltower.DisableBaselineInput,
	optFns ...func(*controltower.Options)) (*controltower.DisableBaselineOutput, error) {
	return a.client.DisableBaseline(ctx, params, optFns...)
}

func (a *AwsControlTowerApi) ResetEnabledBaseline(ctx context.Context,
	params *controltower.ResetEnabledBaselineInput,
	optFns ...func(*controltower.Options)) (*controltower.ResetEnabledBaselineOutput, error) {
	return a.client.ResetEnabledBaseline(ctx, params, optFns...)
}

func (a *AwsControlTowerApi) GetBaselineOperation(ctx context.Context,
	params *controltower.GetBaselineOperationInput,
	optFns ...func(*controltower.Options)) (*controltower.GetBaselineOperationOutput, error) {
	return a.client.GetBaselineOperation(ctx, params, optFns...)
}

func (a *AwsControlTowerApi) EnableControl(ctx context.Context,
	params *controltower.EnableControlInput,
	optFns ...func(*controltower.Options)) (*controltower.EnableControlOutput, error) {
	return a.client.EnableControl(ctx, params, optFns...)
}

func (a *AwsControlTowerApi) DisableControl(ctx context.Context,
	params *controltower.DisableControlInput,
	optFns ...func(*controltower.Options)) (*controltower.DisableControlOutput, error) {
	return a.client.DisableControl(ctx, params, optFns...)
}

func (a *AwsControlTowerApi) GetControlOperation(ctx context.Context,
	params *controltower.GetControlOperationInput,
	optFns ...func(*controltower.Options)) (*controltower.GetControlOperationOutput, error) {
	return a.client.GetControlOperation(ctx, params, optFns...)
}

func (a *AwsControlTowerApi) NewListLandingZonesPaginator(params *controltower.ListLandingZonesInput) ListLandingZonesPager {
	return controltower.NewListLandingZonesPaginator(a.client, params)
}

func (a *AwsControlTowerApi) NewListBaselinesPaginator(params *controltower.ListBaselinesInput) ListBaselinesPager {
	return controltower.NewListBaselinesPaginator(a.client, params)
}

func (a *AwsControlTowerApi) NewListEnabledBaselinesPaginator(params *controltower.ListEnabledBaselinesInput) ListEnabledBaselinesPager {
	return controltower.NewListEnabledBaselinesPaginator(a.client, params)
}

func (a *AwsControlTowerApi) NewListEnabledControlsPaginator(params *controltower.ListEnabledControlsInput) ListEnabledControlsPager {
	return controltower.NewListEnabledControlsPaginator(a.client, params)
}
