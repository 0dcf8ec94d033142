// Package xmlexport construye el documento XML de exportación de facturas
// que consumen los sistemas contables externos del ISP.
package xmlexport

import (
	"fmt"
	"time"

	"github.com/beevik/etree"

	appbilling "github.com/jhoicas/netbill-api/internal/application/billing"
	"github.com/jhoicas/netbill-api/internal/domain/entity"
)

var _ appbilling.BillsXMLBuilder = (*EtreeBillsBuilder)(nil)

// EtreeBillsBuilder implementa billing.BillsXMLBuilder usando etree.
type EtreeBillsBuilder struct{}

// NewEtreeBillsBuilder construye el builder.
func NewEtreeBillsBuilder() *EtreeBillsBuilder { return &EtreeBillsBuilder{} }

// Build genera el documento. Estructura:
//
//	<BillExport generatedAt="..." count="N">
//	  <Bill id="...">
//	    <Customer serialNumber="..." name="..."/>
//	    <BillingDate>2024-01-01</BillingDate>
//	    <Services>
//	      <Service name="IIG">100.00</Service>
//	      ...
//	    </Services>
//	    <Discount>0.00</Discount>
//	    <TotalBill>600.00</TotalBill>
//	    <TotalReceived>500.00</TotalReceived>
//	    <TotalDue>100.00</TotalDue>
//	    <Status>Active</Status>
//	  </Bill>
//	</BillExport>
func (b *EtreeBillsBuilder) Build(bills []*entity.Bill, customers map[string]*entity.Customer) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("BillExport")
	root.CreateAttr("generatedAt", time.Now().UTC().Format(time.RFC3339))
	root.CreateAttr("count", fmt.Sprintf("%d", len(bills)))

	serviceNames := []string{"IIG", "FNA", "GGC", "CDN", "BDIX", "Baishan"}

	for _, bill := range bills {
		be := root.CreateElement("Bill")
		be.CreateAttr("id", bill.ID)

		ce := be.CreateElement("Customer")
		if c, ok := customers[bill.CustomerID]; ok {
			ce.CreateAttr("serialNumber", c.SerialNumber)
			ce.CreateAttr("name", c.Name)
		} else {
			ce.CreateAttr("id", bill.CustomerID)
		}

		be.CreateElement("BillingDate").SetText(bill.BillingDate.Format("2006-01-02"))

		services := be.CreateElement("Services")
		for i, price := range bill.ServicePrices() {
			se := services.CreateElement("Service")
			se.CreateAttr("name", serviceNames[i])
			se.SetText(price.StringFixed(2))
		}

		be.CreateElement("Discount").SetText(bill.Discount.StringFixed(2))
		be.CreateElement("TotalBill").SetText(bill.TotalBill.StringFixed(2))
		be.CreateElement("TotalReceived").SetText(bill.TotalReceived.StringFixed(2))
		be.CreateElement("TotalDue").SetText(bill.TotalDue.StringFixed(2))
		be.CreateElement("Status").SetText(bill.Status)

		if bill.ActiveDate != nil {
			be.CreateElement("ActiveDate").SetText(bill.ActiveDate.Format("2006-01-02"))
		}
		if bill.TerminationDate != nil {
			be.CreateElement("TerminationDate").SetText(bill.TerminationDate.Format("2006-01-02"))
		}
	}

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("xml: serializar exportación: %w", err)
	}
	return out, nil
}
