package veritrans_integration_models

// BuildChargeResponse picks the response type matching the payment method of the charge that
// produced data. Payment methods without a dedicated type get a ChargeResponseBase.
func BuildChargeResponse(request *ChargeRequest, data map[string]any) (ChargeResponse, error) {
	if request == nil {
		return asChargeResponse[*ChargeResponseBase](NewChargeResponseBase(data))
	}

	switch request.PaymentType.(type) {
	case *CreditCard:
		return asChargeResponse[*CreditCardChargeResponse](NewCreditCardChargeResponse(data))
	case *VirtualAccountPermata:
		return asChargeResponse[*VirtualAccountPermataChargeResponse](NewVirtualAccountPermataChargeResponse(data))
	case *VirtualAccountBca:
		return asChargeResponse[*VirtualAccountBcaChargeResponse](NewVirtualAccountBcaChargeResponse(data))
	case *VirtualAccountBni:
		return asChargeResponse[*VirtualAccountBniChargeResponse](NewVirtualAccountBniChargeResponse(data))
	case *VirtualAccountMandiri:
		return asChargeResponse[*VirtualAccountMandiriChargeResponse](NewVirtualAccountMandiriChargeResponse(data))
	case *Indomaret:
		return asChargeResponse[*IndomaretChargeResponse](NewIndomaretChargeResponse(data))
	case *BriEpay:
		return asChargeResponse[*EpayBriChargeResponse](NewEpayBriChargeResponse(data))
	case *CimbClicks:
		return asChargeResponse[*CimbsChargeResponse](NewCimbsChargeResponse(data))
	case *BCAKlikPay:
		return asChargeResponse[*BCAKlikPayChargeResponse](NewBCAKlikPayChargeResponse(data))
	case *KlikBCA:
		return asChargeResponse[*KlikBCAChargeResponse](NewKlikBCAChargeResponse(data))
	case *MandiriClickpay:
		return asChargeResponse[*MandiriChargeResponse](NewMandiriChargeResponse(data))
	case *GoPay:
		return asChargeResponse[*GoPayChargeResponse](NewGoPayChargeResponse(data))
	default:
		return asChargeResponse[*ChargeResponseBase](NewChargeResponseBase(data))
	}
}

// asChargeResponse keeps a failed constructor from leaking a typed nil into the interface.
func asChargeResponse[T ChargeResponse](response T, err error) (ChargeResponse, error) {
	if err != nil {
		return nil, err
	}

	return response, nil
}
